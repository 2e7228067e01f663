package spicechat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/mocks"
	"github.com/trackforge/bottrack/internal/providers/vendors/spicechat"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func setupClient(t *testing.T) (*mocks.MockHTTPClient, *mocks.MockCredentialSource, spicechat.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	creds := mocks.NewMockCredentialSource(ctrl)
	client := spicechat.NewClient(httpClient, creds, "")
	return httpClient, creds, client
}

// respondWith makes the mocked GET write the given JSON into the result pointer
func respondWith(body string) func(context.Context, string, map[string]string, interface{}) error {
	return func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
		raw := result.(*json.RawMessage)
		*raw = json.RawMessage(body)
		return nil
	}
}

func validCredentials() spicechat.Credentials {
	return spicechat.Credentials{BearerToken: "token", GuestUserID: "guest-1"}
}

func TestFetchEntities_BareList(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, spicechat.API_ENDPOINT+spicechat.LISTING_PATH, gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[
			{"id": "bot-1", "name": "Aki", "title": "Sword Saint", "num_messages": 1200},
			{"id": "bot-2", "name": "Mira", "num_messages": 300}
		]`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "bot-1", records[0].EntityID)
	assert.Equal(t, "Aki", records[0].Name)
	assert.Equal(t, "Sword Saint", records[0].Title)
	assert.Equal(t, int64(1200), records[0].MetricCount)
}

func TestFetchEntities_WrappedPayload(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`{"data": {"characters": [
			{"slug": "bot-1", "characterName": "Aki", "messageCount": "1,234"}
		]}}`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bot-1", records[0].EntityID, "slug is an id fallback")
	assert.Equal(t, "Aki", records[0].Name, "characterName is a name fallback")
	assert.Equal(t, int64(1234), records[0].MetricCount, "grouped digit strings are coerced")
}

func TestFetchEntities_NestedStatsCount(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[
			{"id": "bot-1", "name": "Aki", "stats": {"messageCount": 88}}
		]`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(88), records[0].MetricCount)
}

func TestFetchEntities_DuplicatesFirstWins(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[
			{"id": "bot-1", "name": "First", "num_messages": 100},
			{"id": "bot-1", "name": "Second", "num_messages": 999}
		]`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "First", records[0].Name)
	assert.Equal(t, int64(100), records[0].MetricCount)
}

func TestFetchEntities_DropsItemsWithoutIDOrCount(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[
			{"name": "NoID", "num_messages": 10},
			{"id": "bot-nocount", "name": "NoCount"},
			{"id": "bot-ok", "name": "OK", "num_messages": 5}
		]`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bot-ok", records[0].EntityID)
}

func TestFetchEntities_AvatarNormalized(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[
			{"id": "bot-1", "name": "Aki", "num_messages": 1, "avatarUrl": "/avatars/abc.png"}
		]`))

	records, err := client.FetchEntities(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, spicechat.AVATAR_CDN+"/abc.png", records[0].AvatarURL)
}

func TestFetchEntities_SendsAuthHeaders(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, result interface{}) error {
			assert.Equal(t, "Bearer token", headers["Authorization"])
			assert.Equal(t, "spicychat", headers["x-app-id"])
			assert.Equal(t, "guest-1", headers["x-guest-userid"])
			raw := result.(*json.RawMessage)
			*raw = json.RawMessage(`[{"id": "bot-1", "name": "Aki", "num_messages": 1}]`)
			return nil
		})

	_, err := client.FetchEntities(ctx)
	require.NoError(t, err)
}

func TestFetchEntities_MissingCredentials(t *testing.T) {
	_, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(spicechat.Credentials{}, nil)

	_, err := client.FetchEntities(ctx)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestFetchEntities_UnauthorizedStatus(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.StatusError{StatusCode: http.StatusUnauthorized})

	_, err := client.FetchEntities(ctx)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestFetchEntities_ForbiddenStatus(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.StatusError{StatusCode: http.StatusForbidden})

	_, err := client.FetchEntities(ctx)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestFetchEntities_OtherHTTPError(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := client.FetchEntities(ctx)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAuthRequired)
}

func TestFetchEntities_EmptyPayload(t *testing.T) {
	httpClient, creds, client := setupClient(t)
	ctx := context.Background()

	creds.EXPECT().Credentials(ctx).Return(validCredentials(), nil)
	httpClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`[]`))

	_, err := client.FetchEntities(ctx)

	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}

func TestNormalizeAvatarURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "slash_avatars_prefix", in: "/avatars/a.png", want: spicechat.AVATAR_CDN + "/a.png"},
		{name: "avatars_prefix", in: "avatars/a.png", want: spicechat.AVATAR_CDN + "/a.png"},
		{name: "absolute_url_unchanged", in: "https://elsewhere.example/a.png", want: "https://elsewhere.example/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spicechat.NormalizeAvatarURL(tt.in))
		})
	}
}
