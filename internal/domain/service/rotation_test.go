package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/friday-rota/internal/domain"
	"github.com/diegoclair/friday-rota/internal/domain/entity"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWebhook = "https://hooks.slack.com/services/T000/B000/XXXX"

// Wednesday, two days before the first Friday of 2024
var testToday = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

func testConfig() *entity.RotaConfig {
	return &entity.RotaConfig{
		Members:         []string{"A", "B", "C"},
		StartMember:     "B",
		SlackWebhookURL: testWebhook,
		SlackIDMap:      map[string]string{"B": "U222"},
		Overrides:       map[string]string{},
	}
}

func Test_rotaService_GetConfig(t *testing.T) {
	t.Run("Should return stored config", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig()
		m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)

		got, err := newTestRota(m, testToday).GetConfig()

		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("Should propagate storage error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(nil, assert.AnError).Times(1)

		got, err := newTestRota(m, testToday).GetConfig()

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})
}

func Test_rotaService_UpdateSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  entity.Settings
		buildMock func(m allMocks)
		want      *entity.RotaConfig
		wantErr   bool
	}{
		{
			name: "Should clean members and keep overrides",
			settings: entity.Settings{
				Members:         []string{" Leo ", "", "Chris", "Leo"},
				StartMember:     "Chris",
				SlackWebhookURL: " " + testWebhook + " ",
				SlackIDMap:      map[string]string{"Leo": "U1", "Chris": " ", "": "U9"},
			},
			buildMock: func(m allMocks) {
				cfg := testConfig()
				cfg.Overrides["2024-01-05"] = "X"
				m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
				m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
			},
			want: &entity.RotaConfig{
				Members:         []string{"Leo", "Chris"},
				StartMember:     "Chris",
				SlackWebhookURL: testWebhook,
				SlackIDMap:      map[string]string{"Leo": "U1"},
				Overrides:       map[string]string{"2024-01-05": "X"},
			},
		},
		{
			name: "Should fall back to first member when start member is removed",
			settings: entity.Settings{
				Members:     []string{"Dylan", "Oliver"},
				StartMember: "B",
			},
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
			},
			want: &entity.RotaConfig{
				Members:     []string{"Dylan", "Oliver"},
				StartMember: "Dylan",
				SlackIDMap:  map[string]string{},
				Overrides:   map[string]string{},
			},
		},
		{
			name: "Should keep current members when new list is blank",
			settings: entity.Settings{
				Members:         []string{"  ", ""},
				StartMember:     "",
				SlackWebhookURL: testWebhook,
			},
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
			},
			want: &entity.RotaConfig{
				Members:         []string{"A", "B", "C"},
				StartMember:     "B",
				SlackWebhookURL: testWebhook,
				SlackIDMap:      map[string]string{},
				Overrides:       map[string]string{},
			},
		},
		{
			name: "Should accept new start member when member list is blank",
			settings: entity.Settings{
				Members:     nil,
				StartMember: "C",
			},
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
			},
			want: &entity.RotaConfig{
				Members:     []string{"A", "B", "C"},
				StartMember: "C",
				SlackIDMap:  map[string]string{},
				Overrides:   map[string]string{},
			},
		},
		{
			name:     "Should return error when save fails",
			settings: entity.Settings{Members: []string{"A"}},
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name:     "Should return error when load fails",
			settings: entity.Settings{Members: []string{"A"}},
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestRota(m, testToday).UpdateSettings(tt.settings)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_rotaService_Schedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Overrides = map[string]string{"2024-12-20": "X", "2023-12-29": "Y"}
	m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)

	// 2024-12-06 is a Friday, leaving four in the year
	got, err := newTestRota(m, time.Date(2024, 12, 4, 0, 0, 0, 0, time.UTC)).Schedule()

	require.NoError(t, err)
	assert.Equal(t, []entity.Assignment{
		{Date: "2024-12-06", Assignee: "B"},
		{Date: "2024-12-13", Assignee: "C"},
		{Date: "2024-12-20", Assignee: "X", Overridden: true},
		{Date: "2024-12-27", Assignee: "B"},
	}, got)
}

func Test_rotaService_NextAssignment(t *testing.T) {
	t.Run("Should return next Friday assignee", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)

		got, err := newTestRota(m, testToday).NextAssignment()

		require.NoError(t, err)
		assert.Equal(t, &entity.Assignment{Date: "2024-01-05", Assignee: "B"}, got)
	})

	t.Run("Should return error when year has no Friday left", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)

		got, err := newTestRota(m, time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC)).NextAssignment()

		require.ErrorIs(t, err, domain.ErrNoUpcomingDate)
		assert.Nil(t, got)
	})

	t.Run("Should return error when there are no members", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig()
		cfg.Members = []string{}
		m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)

		got, err := newTestRota(m, testToday).NextAssignment()

		require.ErrorIs(t, err, domain.ErrNoAssignee)
		assert.Nil(t, got)
	})
}

func Test_rotaService_SetOverride(t *testing.T) {
	t.Run("Should store override", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
		m.mockConfigStore.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(cfg *entity.RotaConfig) error {
				assert.Equal(t, map[string]string{"2024-01-12": "Leo"}, cfg.Overrides)
				return nil
			}).Times(1)

		err := newTestRota(m, testToday).SetOverride("2024-01-12", " Leo ")

		require.NoError(t, err)
	})

	t.Run("Should reject invalid date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		err := newTestRota(m, testToday).SetOverride("12/01/2024", "Leo")

		require.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Should clear override when assignee is empty", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig()
		cfg.Overrides["2024-01-12"] = "Leo"
		m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
		m.mockConfigStore.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(cfg *entity.RotaConfig) error {
				assert.Empty(t, cfg.Overrides)
				return nil
			}).Times(1)

		err := newTestRota(m, testToday).SetOverride("2024-01-12", "  ")

		require.NoError(t, err)
	})

	t.Run("Should return error when save fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
		m.mockConfigStore.EXPECT().Save(gomock.Any()).Return(assert.AnError).Times(1)

		err := newTestRota(m, testToday).SetOverride("2024-01-12", "Leo")

		require.ErrorIs(t, err, assert.AnError)
	})
}

func Test_rotaService_ClearOverride(t *testing.T) {
	t.Run("Should not save when date has no override", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)

		err := newTestRota(m, testToday).ClearOverride("2024-01-12")

		require.NoError(t, err)
	})

	t.Run("Should reject invalid date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		err := newTestRota(m, testToday).ClearOverride("tomorrow")

		require.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func Test_rotaService_ClearOverrides(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Overrides = map[string]string{"2024-01-05": "X", "2024-01-12": "Y"}
	m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
	m.mockConfigStore.EXPECT().Save(gomock.Any()).
		DoAndReturn(func(cfg *entity.RotaConfig) error {
			assert.NotNil(t, cfg.Overrides)
			assert.Empty(t, cfg.Overrides)
			return nil
		}).Times(1)

	err := newTestRota(m, testToday).ClearOverrides()

	require.NoError(t, err)
}

func Test_rotaService_NotifyNext(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		buildMock func(m allMocks)
		want      *entity.NotifyResult
		wantErr   error
	}{
		{
			name:  "Should send reminder with mention for next Friday",
			today: testToday,
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockNotifier.EXPECT().
					Send(gomock.Any(), testWebhook, notify.BuildMessage("B", "2024-01-05", map[string]string{"B": "U222"})).
					Return(nil).Times(1)
			},
			want: &entity.NotifyResult{Sent: true, Date: "2024-01-05", Assignee: "B"},
		},
		{
			name:  "Should honour override for next Friday",
			today: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				cfg := testConfig()
				cfg.Overrides["2024-01-12"] = "X"
				m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
				m.mockNotifier.EXPECT().
					Send(gomock.Any(), testWebhook, notify.BuildMessage("X", "2024-01-12", nil)).
					Return(nil).Times(1)
			},
			want: &entity.NotifyResult{Sent: true, Date: "2024-01-12", Assignee: "X"},
		},
		{
			name:  "Should skip without webhook",
			today: testToday,
			buildMock: func(m allMocks) {
				cfg := testConfig()
				cfg.SlackWebhookURL = ""
				m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
			},
			want: &entity.NotifyResult{Reason: domain.ReasonNoWebhook},
		},
		{
			name:  "Should skip when no Friday is left this year",
			today: time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
			},
			want: &entity.NotifyResult{Reason: domain.ReasonNoUpcomingDate},
		},
		{
			name:  "Should skip when nobody is assigned",
			today: testToday,
			buildMock: func(m allMocks) {
				cfg := testConfig()
				cfg.Members = []string{}
				m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)
			},
			want: &entity.NotifyResult{Date: "2024-01-05", Reason: domain.ReasonNoAssignee},
		},
		{
			name:  "Should return webhook error without retrying",
			today: testToday,
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
				m.mockNotifier.EXPECT().
					Send(gomock.Any(), testWebhook, gomock.Any()).
					Return(&notify.HTTPError{StatusCode: 500, Body: "boom"}).Times(1)
			},
			wantErr: &notify.HTTPError{},
		},
		{
			name:  "Should return storage error",
			today: testToday,
			buildMock: func(m allMocks) {
				m.mockConfigStore.EXPECT().Load().Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			got, err := newTestRota(m, tt.today).NotifyNext(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				var httpErr *notify.HTTPError
				if errors.As(tt.wantErr, &httpErr) {
					require.ErrorAs(t, err, &httpErr)
					assert.Contains(t, err.Error(), "500")
					assert.Contains(t, err.Error(), "boom")
				} else {
					require.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_rotaService_NotifyDate(t *testing.T) {
	t.Run("Should send reminder for scheduled date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)
		m.mockNotifier.EXPECT().
			Send(gomock.Any(), testWebhook, notify.BuildMessage("A", "2024-01-19", nil)).
			Return(nil).Times(1)

		got, err := newTestRota(m, testToday).NotifyDate(context.Background(), "2024-01-19")

		require.NoError(t, err)
		assert.Equal(t, &entity.NotifyResult{Sent: true, Date: "2024-01-19", Assignee: "A"}, got)
	})

	t.Run("Should reject date outside schedule", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockConfigStore.EXPECT().Load().Return(testConfig(), nil).Times(1)

		got, err := newTestRota(m, testToday).NotifyDate(context.Background(), "2024-01-18")

		require.ErrorIs(t, err, domain.ErrNoAssignee)
		assert.Nil(t, got)
	})

	t.Run("Should require webhook", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig()
		cfg.SlackWebhookURL = ""
		m.mockConfigStore.EXPECT().Load().Return(cfg, nil).Times(1)

		got, err := newTestRota(m, testToday).NotifyDate(context.Background(), "2024-01-19")

		require.ErrorIs(t, err, domain.ErrWebhookNotConfigured)
		assert.Nil(t, got)
	})

	t.Run("Should reject malformed date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		got, err := newTestRota(m, testToday).NotifyDate(context.Background(), "2024-13-01")

		require.ErrorIs(t, err, domain.ErrInvalidDate)
		assert.Nil(t, got)
	})
}
