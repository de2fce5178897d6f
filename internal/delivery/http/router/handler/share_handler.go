package handler

import (
	"fmt"
	"net/http"
	"strings"

	"cardbox/internal/delivery/http/response"
	domainerrors "cardbox/internal/domain/errors"
	"cardbox/internal/domain/service"
	"cardbox/internal/usecase"
	"cardbox/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler serves the distribution surfaces of a card: the share
// link, its QR rendering, the downloadable contact file and the public
// read-only view.
type ShareHandler struct {
	uc       usecase.CardUsecase
	codec    service.ShareCodec
	qr       service.QRCodeService
	contacts service.ContactFileService
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(
	uc usecase.CardUsecase,
	codec service.ShareCodec,
	qr service.QRCodeService,
	contacts service.ContactFileService,
) *ShareHandler {
	return &ShareHandler{
		uc:       uc,
		codec:    codec,
		qr:       qr,
		contacts: contacts,
	}
}

// Share returns the card's public URL and its bare token.
func (h *ShareHandler) Share(c echo.Context) error {
	card, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.codec.Encode(card)
	if err != nil {
		return errors.WithStack(err)
	}
	shareURL, err := h.codec.ShareURL(card)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"shareUrl": shareURL,
		"token":    token,
	}, "Share link generated successfully")
}

// ShareQR streams a PNG QR code pointing at the card's public URL.
func (h *ShareHandler) ShareQR(c echo.Context) error {
	card, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qr.GenerateShareQR(card)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VCard streams the card as a downloadable vCard 3.0 contact file.
func (h *ShareHandler) VCard(c echo.Context) error {
	card, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	body := h.contacts.Render(card)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, h.contacts.Filename(card)))

	return c.Blob(http.StatusOK, "text/vcard;charset=utf-8", []byte(body))
}

// PublicCard decodes a share token into a viewable card. It is the only
// card route reachable without a session.
func (h *ShareHandler) PublicCard(c echo.Context) error {
	// The token must reach the codec still percent-encoded. QueryParam
	// would decode it once here and Decode once more, turning every
	// literal "+" in the card data into a space and breaking on "%".
	token := rawShareToken(c.Request().URL.RawQuery)
	if token == "" {
		return errors.Wrap(domainerrors.ErrShareTokenInvalid, "missing card query parameter")
	}

	card, err := h.codec.Decode(token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"card":         card,
		"displayPhone": util.FormatDisplayPhone(card.Phone),
	}, "Card decoded successfully")
}

// rawShareToken extracts the card value from the raw query string without
// percent-decoding it.
func rawShareToken(rawQuery string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		if token, ok := strings.CutPrefix(pair, "card="); ok {
			return token
		}
	}

	return ""
}
