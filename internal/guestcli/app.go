package guestcli

import (
	"context"
	"strings"
	"time"

	chatDto "concierge/internal/domains/chat/model/dto"
	guestDto "concierge/internal/domains/guest/model/dto"
	submissionDto "concierge/internal/domains/submission/model/dto"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

var (
	ErrUserIDMissing = failure.Unauthorized("User ID missing")
	ErrNotLoggedIn   = failure.Unauthorized("not logged in, run 'guest login' first")
)

// App is the guest client: a local identity cache in front of the API client.
type App struct {
	store  *Store
	client *Client
	now    func() time.Time
}

func NewApp(store *Store, client *Client) *App {
	return &App{
		store:  store,
		client: client,
		now:    time.Now,
	}
}

func (a *App) Login(ctx context.Context, email, password string) (Session, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		UserID:       res.User.ID,
		Email:        email,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    a.now().Add(time.Duration(res.ExpiresIn) * time.Second),
	}

	if err := a.store.SaveSession(session); err != nil {
		return Session{}, err
	}

	// remember who this device belongs to even after the token expires
	if err := a.store.SaveIdentity(Identity{UserID: session.UserID}); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Logout ends the session on the server, then forgets it locally. A failed revocation
// is returned after the local session is gone.
func (a *App) Logout(ctx context.Context) error {
	session, err := a.activeSession()
	if err != nil {
		return err
	}

	var revokeErr error

	if session != nil {
		a.client.AccessToken = session.AccessToken
		revokeErr = a.client.Logout(ctx, session.RefreshToken)
	}

	if err := a.store.ClearSession(); err != nil {
		return err
	}

	return revokeErr
}

func (a *App) SetIdentity(identity Identity) error {
	identity.GuestName = strings.TrimSpace(identity.GuestName)
	identity.RoomNumber = strings.TrimSpace(identity.RoomNumber)
	identity.UserID = strings.TrimSpace(identity.UserID)

	if identity == (Identity{}) {
		return failure.BadRequestFromString("nothing to set: pass --name, --room or --user-id")
	}

	return a.store.SaveIdentity(identity)
}

func (a *App) Identity() (*Identity, error) {
	return a.store.LoadIdentity()
}

func (a *App) ClearIdentity() error {
	return a.store.ClearIdentity()
}

// SubmitRequest sends a request to the front desk. Without a user id from the session or
// the cached identity it fails before any network call.
func (a *App) SubmitRequest(ctx context.Context, description, kind, categoryID string) (submissionDto.SubmitResult, error) {
	session, err := a.activeSession()
	if err != nil {
		return submissionDto.SubmitResult{}, err
	}

	identity, err := a.store.LoadIdentity()
	if err != nil {
		return submissionDto.SubmitResult{}, err
	}

	req := submissionDto.SubmitRequest{
		Description: description,
		Type:        kind,
		CategoryID:  categoryID,
	}

	if identity != nil {
		req.IdentityHint = guestDto.IdentityHint{
			GuestName:  identity.GuestName,
			RoomNumber: identity.RoomNumber,
		}
	}

	switch {
	case session != nil:
		a.client.AccessToken = session.AccessToken
		req.UserID = session.UserID
	case identity != nil && identity.UserID != constant.Empty:
		req.UserID = identity.UserID
	default:
		return submissionDto.SubmitResult{}, ErrUserIDMissing
	}

	return a.client.Submit(ctx, req)
}

func (a *App) Messages(ctx context.Context, page, limit int) (chatDto.GetMessagesResponse, error) {
	if err := a.authorize(); err != nil {
		return chatDto.GetMessagesResponse{}, err
	}

	return a.client.Messages(ctx, page, limit)
}

func (a *App) SendMessage(ctx context.Context, text string) (chatDto.MessageResponse, error) {
	if err := a.authorize(); err != nil {
		return chatDto.MessageResponse{}, err
	}

	identity, err := a.store.LoadIdentity()
	if err != nil {
		return chatDto.MessageResponse{}, err
	}

	req := chatDto.SendMessageRequest{Text: text}
	if identity != nil {
		req.IdentityHint = guestDto.IdentityHint{GuestName: identity.GuestName, RoomNumber: identity.RoomNumber}
	}

	return a.client.SendMessage(ctx, req)
}

func (a *App) authorize() error {
	session, err := a.activeSession()
	if err != nil {
		return err
	}

	if session == nil {
		return ErrNotLoggedIn
	}

	a.client.AccessToken = session.AccessToken

	return nil
}

// activeSession ignores a stored session whose access token has expired.
func (a *App) activeSession() (*Session, error) {
	session, err := a.store.LoadSession()
	if err != nil || session == nil {
		return nil, err
	}

	if !session.ExpiresAt.IsZero() && a.now().After(session.ExpiresAt) {
		return nil, nil
	}

	return session, nil
}
