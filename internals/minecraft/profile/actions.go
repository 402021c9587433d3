package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/dchest/uniuri"
	"github.com/minepkg/mcprofile/internals/downloadmgr"
)

const (
	ActionGetProfile    = "Get profile"
	ActionGetNameChange = "Get name change"
	ActionResetSkin     = "Reset skin"
	ActionChangeSkin    = "Change skin"
	ActionChangeName    = "Change name"
	ActionChangeCape    = "Change cape"
	ActionResetCape     = "Reset cape"
)

// GetProfile fetches the full profile. It also returns the extracted token.
func (c *Client) GetProfile(ctx context.Context, credential string) (*Profile, string, error) {
	token, err := ExtractToken(credential)
	if err != nil {
		return nil, "", invalidCredential(ActionGetProfile)
	}

	body, err := c.getJSON(ctx, ActionGetProfile, endpointProfile, token)
	if err != nil {
		return nil, "", err
	}
	if err := validateProfile(body); err != nil {
		return nil, "", validationError(ActionGetProfile, err)
	}

	profile := Profile{}
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, "", validationError(ActionGetProfile, err)
	}
	return &profile, token, nil
}

type nameChangeResponse struct {
	ChangedAt         *string `json:"changedAt"`
	CreatedAt         string  `json:"createdAt"`
	NameChangeAllowed bool    `json:"nameChangeAllowed"`
}

// GetNameChange fetches when the profile was created, when the name was changed
// last and if it can be changed right now.
func (c *Client) GetNameChange(ctx context.Context, credential string) (*NameChangeStatus, error) {
	token, err := ExtractToken(credential)
	if err != nil {
		return nil, invalidCredential(ActionGetNameChange)
	}

	body, err := c.getJSON(ctx, ActionGetNameChange, endpointNameChange, token)
	if err != nil {
		return nil, err
	}
	if err := validateNameChange(body); err != nil {
		return nil, validationError(ActionGetNameChange, err)
	}

	raw := nameChangeResponse{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, validationError(ActionGetNameChange, err)
	}

	status := &NameChangeStatus{NameChangeAllowed: raw.NameChangeAllowed}
	status.CreatedAt, err = parseTimestamp("createdAt", raw.CreatedAt)
	if err != nil {
		return nil, validationError(ActionGetNameChange, err)
	}
	if raw.ChangedAt != nil {
		changedAt, err := parseTimestamp("changedAt", *raw.ChangedAt)
		if err != nil {
			return nil, validationError(ActionGetNameChange, err)
		}
		status.ChangedAt = &changedAt
	}
	return status, nil
}

func parseTimestamp(field string, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("name change: field %q is not a timestamp: %w", field, err)
	}
	return t, nil
}

// ResetSkin resets the skin to the default one
func (c *Client) ResetSkin(ctx context.Context, credential string) (string, error) {
	return c.simple(ctx, ActionResetSkin, http.MethodDelete, endpointSkinsActive, credential)
}

// ChangeSkin uploads skin (a 64x64 png) as the new active skin
func (c *Client) ChangeSkin(ctx context.Context, credential string, skin []byte, variant Variant) (string, error) {
	if len(skin) == 0 {
		return "", inputError(ActionChangeSkin, "skin file is not selected")
	}
	token, err := ExtractToken(credential)
	if err != nil {
		return "", invalidCredential(ActionChangeSkin)
	}
	if err := ValidateSkin(skin); err != nil {
		return "", inputError(ActionChangeSkin, err.Error())
	}
	if variant == "" {
		variant = VariantClassic
	}

	body, contentType, err := skinForm(skin, variant)
	if err != nil {
		return "", transportError(ActionChangeSkin, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, endpointSkins, token, body)
	if err != nil {
		return "", transportError(ActionChangeSkin, err)
	}
	req.Header.Set("Content-Type", contentType)

	if err := c.exec(ActionChangeSkin, req); err != nil {
		return "", err
	}
	return token, nil
}

// skinForm encodes the multipart body with the "file" and "variant" fields
func skinForm(skin []byte, variant Variant) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := w.SetBoundary("mcprofile" + uniuri.NewLen(32)); err != nil {
		return nil, "", err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="skin.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(skin); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("variant", variant.wire()); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// ChangeSkinWithURL downloads the png at skinURL and uploads it with ChangeSkin
func (c *Client) ChangeSkinWithURL(ctx context.Context, credential string, skinURL string, variant Variant) (string, error) {
	if !IsURL(skinURL) {
		return "", inputError(ActionChangeSkin, fmt.Sprintf("%q is not a url", skinURL))
	}

	item := downloadmgr.NewHTTPItem(skinURL, "image/png")
	item.Client = c.http
	skin, err := item.Fetch(ctx)
	if err != nil {
		var statusErr *downloadmgr.ErrInvalidStatus
		var typeErr *downloadmgr.ErrInvalidContentType
		var sizeErr *downloadmgr.ErrTooLarge
		if errors.As(err, &statusErr) || errors.As(err, &typeErr) || errors.As(err, &sizeErr) {
			return "", downloadError(ActionChangeSkin, err)
		}
		return "", transportError(ActionChangeSkin, err)
	}
	if err := ValidateSkin(skin); err != nil {
		return "", downloadError(ActionChangeSkin, err)
	}

	return c.ChangeSkin(ctx, credential, skin, variant)
}

// IsURL reports whether s is an absolute http(s) url
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ChangeName changes the profile name. The name is checked against NameRegex first.
func (c *Client) ChangeName(ctx context.Context, credential string, name string) (string, error) {
	if !ValidName(name) {
		return "", inputError(ActionChangeName, "entered name is invalid")
	}
	return c.simple(ctx, ActionChangeName, http.MethodPut, endpointName+url.PathEscape(name), credential)
}

// ChangeCape makes the cape with the given id the active one
func (c *Client) ChangeCape(ctx context.Context, credential string, capeID string) (string, error) {
	if capeID == "" {
		return "", inputError(ActionChangeCape, "no cape selected")
	}
	token, err := ExtractToken(credential)
	if err != nil {
		return "", invalidCredential(ActionChangeCape)
	}

	payload, err := json.Marshal(struct {
		CapeID string `json:"capeId"`
	}{capeID})
	if err != nil {
		return "", transportError(ActionChangeCape, err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, endpointCapesActive, token, bytes.NewReader(payload))
	if err != nil {
		return "", transportError(ActionChangeCape, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.exec(ActionChangeCape, req); err != nil {
		return "", err
	}
	return token, nil
}

// ResetCape hides the currently active cape
func (c *Client) ResetCape(ctx context.Context, credential string) (string, error) {
	return c.simple(ctx, ActionResetCape, http.MethodDelete, endpointCapesActive, credential)
}

// simple handles body-less mutations that only return the token on success
func (c *Client) simple(ctx context.Context, action string, method string, path string, credential string) (string, error) {
	token, err := ExtractToken(credential)
	if err != nil {
		return "", invalidCredential(action)
	}
	req, err := c.newRequest(ctx, method, path, token, nil)
	if err != nil {
		return "", transportError(action, err)
	}
	if err := c.exec(action, req); err != nil {
		return "", err
	}
	return token, nil
}
