package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	storageMock "github.com/punyakios/go-kios-client/internal/common/localstorage/mock"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/models"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func TestState_Token(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemoryStorage[string]()
	state := New(storage)

	token, err := state.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, state.SetToken(ctx, "secret"))
	token, err = state.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret", token)

	stored, err := storage.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)
}

func TestState_TokenIsCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := storageMock.NewMockLocalStorage[string](ctrl)

	storage.EXPECT().Get(gomock.Any(), KeyToken).Return("secret", nil).Times(1)

	state := New(storage)
	for i := 0; i < 3; i++ {
		token, err := state.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "secret", token)
	}
}

func TestState_BiometricEnabled(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(storage *storageMock.MockLocalStorage[string])
		want    bool
		wantErr bool
	}{
		{
			name: "enabled",
			doMock: func(storage *storageMock.MockLocalStorage[string]) {
				storage.EXPECT().Get(gomock.Any(), KeyBiometricEnabled).Return("true", nil)
			},
			want: true,
		},
		{
			name: "disabled",
			doMock: func(storage *storageMock.MockLocalStorage[string]) {
				storage.EXPECT().Get(gomock.Any(), KeyBiometricEnabled).Return("false", nil)
			},
		},
		{
			name: "missing",
			doMock: func(storage *storageMock.MockLocalStorage[string]) {
				storage.EXPECT().Get(gomock.Any(), KeyBiometricEnabled).Return("", nil)
			},
		},
		{
			name: "other value",
			doMock: func(storage *storageMock.MockLocalStorage[string]) {
				storage.EXPECT().Get(gomock.Any(), KeyBiometricEnabled).Return("TRUE", nil)
			},
		},
		{
			name: "error",
			doMock: func(storage *storageMock.MockLocalStorage[string]) {
				storage.EXPECT().Get(gomock.Any(), KeyBiometricEnabled).Return("", errors.New("closed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := storageMock.NewMockLocalStorage[string](ctrl)
			tt.doMock(storage)

			got, err := New(storage).BiometricEnabled(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestState_SetBiometricEnabled(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemoryStorage[string]()
	state := New(storage)

	require.NoError(t, state.SetBiometricEnabled(ctx, true))
	raw, err := storage.Get(ctx, KeyBiometricEnabled)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	require.NoError(t, state.SetBiometricEnabled(ctx, false))
	enabled, err := state.BiometricEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestState_User(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemoryStorage[string]()
	state := New(storage)

	_, ok, err := state.User(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	profile := models.Profile{ID: "7", Name: "Budi", Balance: models.MustDecimal("15000"), BiometricEnabled: true}
	require.NoError(t, state.SetUser(ctx, profile))

	got, ok, err := state.User(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Budi", got.Name)
	assert.True(t, got.Balance.Equal(profile.Balance.Decimal))
	assert.True(t, bool(got.BiometricEnabled))

	require.NoError(t, storage.Set(ctx, KeyUser, "{not json"))
	_, ok, err = state.User(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestState_Clear(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemoryStorage[string]()
	state := New(storage)

	require.NoError(t, state.SetToken(ctx, "secret"))
	require.NoError(t, state.SetUser(ctx, models.Profile{Name: "Budi"}))
	require.NoError(t, state.SetBiometricEnabled(ctx, true))

	require.NoError(t, state.Clear(ctx))

	token, err := state.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, ok, err := state.User(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	enabled, err := state.BiometricEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
}
