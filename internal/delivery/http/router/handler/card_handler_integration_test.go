package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"cardbox/config"
	"cardbox/internal/delivery/http/middleware"
	"cardbox/internal/delivery/http/validator"
	"cardbox/internal/domain/entity"
	"cardbox/internal/infra/persistence/sqlite"
	"cardbox/internal/infra/share"
	"cardbox/internal/infra/vcard"
	"cardbox/internal/usecase"
	"cardbox/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	echo         *echo.Echo
	cardHandler  *CardHandler
	shareHandler *ShareHandler
	uc           usecase.CardUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kv, err := sqlite.OpenKV(filepath.Join(t.TempDir(), "cardbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	uc, err := impl.NewCardService(context.Background(), sqlite.NewCardRepository(kv, logger), logger)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Share.BaseURL = "https://cards.example.com/"
	codec := share.NewCodec(cfg)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testEnv{
		echo:         e,
		cardHandler:  NewCardHandler(uc),
		shareHandler: NewShareHandler(uc, codec, nil, vcard.NewSerializer()),
		uc:           uc,
	}
}

func (env *testEnv) request(t *testing.T, method, target, body string, h echo.HandlerFunc, pathParams ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	for i := 0; i+1 < len(pathParams); i += 2 {
		c.SetParamNames(pathParams[i])
		c.SetParamValues(pathParams[i+1])
	}

	if err := h(c); err != nil {
		env.echo.HTTPErrorHandler(err, c)
	}

	return rec
}

func (env *testEnv) bootstrapID(t *testing.T) string {
	t.Helper()

	cards, _, err := env.uc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	return cards[0].ID
}

func TestCardHandler_List_ReturnsBootstrapCollection(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/cards", "", env.cardHandler.List)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"activeCardId"`)
	assert.Contains(t, body, `"cardName":"Default Profile"`)
}

func TestCardHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/cards", `{"cardName":"Trade Show"}`, env.cardHandler.Create)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cardName":"Trade Show"`)
	assert.Contains(t, rec.Body.String(), `"name":"New Profile"`)
}

func TestCardHandler_Create_MissingCardNameRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/cards", `{}`, env.cardHandler.Create)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCardHandler_Update_KeepsUnknownFields(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	rec := env.request(t, http.MethodPut, "/cards/"+id,
		`{"name":"Replaced Name","futureField":{"nested":true}}`,
		env.cardHandler.Update, "id", id)
	require.Equal(t, http.StatusOK, rec.Code)

	// A full replace keeps keys this build does not know about.
	rec = env.request(t, http.MethodGet, "/cards/"+id, "", env.cardHandler.Get, "id", id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Replaced Name"`)
	assert.Contains(t, rec.Body.String(), `"futureField":{"nested":true}`)
}

func TestCardHandler_SetField(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	rec := env.request(t, http.MethodPatch, "/cards/"+id+"/field",
		`{"path":"styleOptions.accentColor","value":"#FF0000"}`,
		env.cardHandler.SetField, "id", id)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accentColor":"#FF0000"`)
}

func TestCardHandler_SetField_UnknownPath(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	rec := env.request(t, http.MethodPatch, "/cards/"+id+"/field",
		`{"path":"noSuchField","value":"x"}`,
		env.cardHandler.SetField, "id", id)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_FIELD_PATH")
}

func TestCardHandler_Get_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/cards/card-99", "", env.cardHandler.Get, "id", "card-99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CARD_NOT_FOUND")
}

func TestShareHandler_ShareAndPublicView(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	rec := env.request(t, http.MethodGet, "/cards/"+id+"/share", "", env.shareHandler.Share, "id", id)
	require.Equal(t, http.StatusOK, rec.Code)

	var wrapper struct {
		Data struct {
			ShareURL string `json:"shareUrl"`
			Token    string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wrapper))
	require.NotEmpty(t, wrapper.Data.Token)
	assert.True(t, strings.HasPrefix(wrapper.Data.ShareURL, "https://cards.example.com/?card="))

	// The issued token drives the public view.
	rec = env.request(t, http.MethodGet, "/card?card="+wrapper.Data.Token, "", env.shareHandler.PublicCard)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"phone":"+919876543210"`)
	assert.Contains(t, body, `"displayPhone":"+91 98765 43210"`)
	assert.Contains(t, body, entity.DefaultCard().Name)
	// Literal plus signs in field values survive the URL round trip.
	assert.Contains(t, body, `"addressLink":"https://maps.google.com/?q=Nagpur,+Maharashtra,+India"`)
}

func TestShareHandler_PublicView_PreservesReservedCharacters(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	// Percent escapes and plus signs in stored values must come back
	// verbatim, decoded exactly once.
	website := "https://example.com/a%20b?tag=c+d"
	_, err := env.uc.SetField(context.Background(), id, &usecase.SetFieldInput{
		Path:  "companyWebsite",
		Value: &website,
	})
	require.NoError(t, err)

	rec := env.request(t, http.MethodGet, "/cards/"+id+"/share", "", env.shareHandler.Share, "id", id)
	require.Equal(t, http.StatusOK, rec.Code)

	var wrapper struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wrapper))

	rec = env.request(t, http.MethodGet, "/card?card="+wrapper.Data.Token, "", env.shareHandler.PublicCard)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"companyWebsite":"https://example.com/a%20b?tag=c+d"`)
}

func TestShareHandler_PublicView_BadToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/card?card=garbage", "", env.shareHandler.PublicCard)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHARE_TOKEN_INVALID")

	rec = env.request(t, http.MethodGet, "/card", "", env.shareHandler.PublicCard)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareHandler_VCardDownload(t *testing.T) {
	env := newTestEnv(t)
	id := env.bootstrapID(t)

	rec := env.request(t, http.MethodGet, "/cards/"+id+"/vcard", "", env.shareHandler.VCard, "id", id)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Atul_Gupta.vcf")
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCARD\nVERSION:3.0"))
	assert.True(t, strings.HasSuffix(body, "END:VCARD"))
}
