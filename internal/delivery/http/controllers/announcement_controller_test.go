package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnnouncementService implements domain.AnnouncementService for handler tests.
type stubAnnouncementService struct {
	announcement string
	featured     string
	err          error
}

func (f *stubAnnouncementService) HandleFeaturedSpeaker(ctx context.Context, conferenceID, speakerName, speakerProfession string) error {
	return f.err
}

func (f *stubAnnouncementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	return f.announcement, f.err
}

func (f *stubAnnouncementService) GetAnnouncement(ctx context.Context) (string, error) {
	return f.announcement, f.err
}

func (f *stubAnnouncementService) GetFeaturedSpeaker(ctx context.Context) (string, error) {
	return f.featured, f.err
}

func TestAnnouncementController_GetAnnouncement(t *testing.T) {
	t.Run("returns the cached message", func(t *testing.T) {
		ctrl := NewAnnouncementController(testControllerLogger(), &stubAnnouncementService{
			announcement: "Last chance to attend! The following conferences are nearly sold out: GopherCon",
		})

		req := httptest.NewRequest(http.MethodGet, "/announcements", nil)
		rec := httptest.NewRecorder()
		ctrl.GetAnnouncement(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.Nil(t, resp.Error)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, data["message"], "GopherCon")
	})

	t.Run("empty slot is an empty message, not an error", func(t *testing.T) {
		ctrl := NewAnnouncementController(testControllerLogger(), &stubAnnouncementService{})

		req := httptest.NewRequest(http.MethodGet, "/announcements/featured-speaker", nil)
		rec := httptest.NewRecorder()
		ctrl.GetFeaturedSpeaker(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.Nil(t, resp.Error)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "", data["message"])
	})
}
