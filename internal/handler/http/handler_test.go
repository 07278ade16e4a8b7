package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/mock"
	"github.com/MKhiriev/work-notes/internal/service"
	"github.com/MKhiriev/work-notes/internal/utils"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		NoteService:    mock.NewMockNoteService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}
	cfg := config.StructuredConfig{Server: config.Server{RequestTimeout: 5 * time.Second}}

	h, err := NewHandler(services, cfg, logger.Nop())

	require.NoError(t, err)
	assert.Same(t, services.NoteService, h.notes)
	assert.Same(t, services.AppInfoService, h.appInfo)
	assert.NotNil(t, h.templates)
	assert.Nil(t, h.auth)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_WithAuth(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)

	h, err := NewHandler(&service.Services{}, config.StructuredConfig{Auth: config.Auth{User: "alice", PasswordHash: hash}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.auth)

	_, err = NewHandler(&service.Services{}, config.StructuredConfig{Auth: config.Auth{User: "alice", PasswordHash: "pw"}}, logger.Nop())
	assert.ErrorIs(t, err, utils.ErrInvalidPasswordHash)
}
