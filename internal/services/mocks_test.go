package services

import (
	"context"
	"errors"
	"time"

	"conferencecentral/internal/domain"
)

// fakeConferenceRepo implements domain.ConferenceRepository for tests.
type fakeConferenceRepo struct {
	byID          map[string]*domain.Conference
	nearlySoldOut []*domain.Conference
	queried       []*domain.Conference

	createErr error
	getErr    error
	listErr   error

	lastInequality string
	lastFilters    []domain.NormalizedFilter
	registerErr    error
	unregistered   bool
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{byID: make(map[string]*domain.Conference)}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, c *domain.Conference) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = "conf-new"
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) Update(ctx context.Context, c *domain.Conference) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConferenceRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Conference
	for _, c := range f.byID {
		if c.OrganizerID == organizerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConferenceRepo) ListAttending(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	return nil, f.listErr
}

func (f *fakeConferenceRepo) Query(ctx context.Context, inequalityColumn string, filters []domain.NormalizedFilter) ([]*domain.Conference, error) {
	f.lastInequality = inequalityColumn
	f.lastFilters = filters
	return f.queried, f.listErr
}

func (f *fakeConferenceRepo) ListNearlySoldOut(ctx context.Context, seats int) ([]*domain.Conference, error) {
	return f.nearlySoldOut, f.listErr
}

func (f *fakeConferenceRepo) Register(ctx context.Context, conferenceID, profileID string) error {
	return f.registerErr
}

func (f *fakeConferenceRepo) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	return f.unregistered, nil
}

// fakeProfileRepo implements domain.ProfileRepository for tests.
type fakeProfileRepo struct {
	byID      map[string]*domain.Profile
	byEmail   map[string]*domain.Profile
	createErr error
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byID:    make(map[string]*domain.Profile),
		byEmail: make(map[string]*domain.Profile),
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.byEmail[p.Email]; taken {
		return domain.ErrAlreadyExists
	}
	p.ID = "prof-new"
	f.byID[p.ID] = p
	f.byEmail[p.Email] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if p, ok := f.byEmail[email]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byID[p.ID] = p
	return nil
}

// fakeSessionRepo implements domain.SessionRepository for tests.
type fakeSessionRepo struct {
	byID        map[string]*domain.Session
	byConfName  map[string]*domain.Session // key: conferenceID + "/" + name
	bySpeakerID []*domain.Session

	createErr error
	created   []*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		byID:       make(map[string]*domain.Session),
		byConfName: make(map[string]*domain.Session),
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = "sess-new"
	f.byID[s.ID] = s
	f.byConfName[s.ConferenceID+"/"+s.Name] = s
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) GetByConferenceAndName(ctx context.Context, conferenceID, name string) (*domain.Session, error) {
	if s, ok := f.byConfName[conferenceID+"/"+name]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.ConferenceID == conferenceID && s.TypeOfSession == typeOfSession {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListBySpeaker(ctx context.Context, speakerFullName, typeOfSession string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.SpeakerName != speakerFullName {
			continue
		}
		if typeOfSession != "" && s.TypeOfSession != typeOfSession {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) ([]*domain.Session, error) {
	return f.bySpeakerID, nil
}

// fakeSpeakerRepo implements domain.SpeakerRepository for tests.
type fakeSpeakerRepo struct {
	byName    map[string]*domain.Speaker
	createErr error
	creates   int
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byName: make(map[string]*domain.Speaker)}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, s *domain.Speaker) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if existing, ok := f.byName[s.FullName]; ok {
		*s = *existing
		return domain.ErrAlreadyExists
	}
	s.ID = "spk-new"
	f.byName[s.FullName] = s
	return nil
}

func (f *fakeSpeakerRepo) GetByFullName(ctx context.Context, fullName string) (*domain.Speaker, error) {
	if s, ok := f.byName[fullName]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) List(ctx context.Context) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for _, s := range f.byName {
		out = append(out, s)
	}
	return out, nil
}

// fakeWishlistRepo implements domain.WishlistRepository for tests.
type fakeWishlistRepo struct {
	byKey map[string]*domain.WishlistEntry // key: profileID + "/" + sessionID
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{byKey: make(map[string]*domain.WishlistEntry)}
}

func (f *fakeWishlistRepo) Create(ctx context.Context, e *domain.WishlistEntry) error {
	key := e.ProfileID + "/" + e.SessionID
	if existing, ok := f.byKey[key]; ok {
		*e = *existing
		return domain.ErrAlreadyExists
	}
	e.ID = "wl-new"
	f.byKey[key] = e
	return nil
}

func (f *fakeWishlistRepo) ListByProfileID(ctx context.Context, profileID string) ([]*domain.WishlistEntry, error) {
	var out []*domain.WishlistEntry
	for _, e := range f.byKey {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeCache implements domain.CacheStore for tests.
type fakeCache struct {
	values  map[string]string
	deletes []string
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.values, key)
	return nil
}

// enqueued records one dispatched task.
type enqueued struct {
	name   string
	params map[string]string
}

// fakeDispatcher implements domain.TaskDispatcher for tests.
type fakeDispatcher struct {
	tasks      []enqueued
	enqueueErr error
}

func (f *fakeDispatcher) Enqueue(ctx context.Context, name string, params map[string]string) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.tasks = append(f.tasks, enqueued{name: name, params: params})
	return nil
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct {
	compareErr error
}

func (f *fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (f *fakeHasher) Hash(salt, password string) (string, error) {
	return "hash-" + password, nil
}
func (f *fakeHasher) Compare(hash, salt, password string) error {
	if f.compareErr != nil {
		return f.compareErr
	}
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer implements domain.TokenIssuer for tests.
type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(profileID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + profileID, nil
}
