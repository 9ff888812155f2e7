package service

import (
	"testing"
	"time"

	"github.com/diegoclair/friday-rota/mocks"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockConfigStore *mocks.MockConfigStore
	mockNotifier    *mocks.MockNotifier
	log             *logrus.Logger
	logHook         *logtest.Hook
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	log, hook := logtest.NewNullLogger()

	m = allMocks{
		mockConfigStore: mocks.NewMockConfigStore(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
		log:             log,
		logHook:         hook,
	}

	// validate service creation
	rotaService := newRota(m.mockConfigStore, m.mockNotifier, m.log)
	require.NotNil(t, rotaService)

	return
}

// newTestRota returns a rota service whose clock is frozen at today
func newTestRota(m allMocks, today time.Time) *rotaService {
	s := newRota(m.mockConfigStore, m.mockNotifier, m.log)
	s.now = func() time.Time { return today }
	return s
}
