package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/api"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/config"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/guard"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/profile"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/session"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/tryon"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/wardrobe"
)

// memStore is an in-memory session.Store.
type memStore struct {
	mu    sync.Mutex
	token string
}

func (s *memStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memStore) Read(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// fakeClient implements api.Client. Methods record their calls; behavior is
// configured through the err/return fields.
type fakeClient struct {
	calls []string

	loginErr   error
	loginToken string

	restoreErr   error
	restoreToken string

	registerSession string
	registerErr     error

	verifyErr  error
	verifyCode string

	user       *models.User
	getUserErr error

	updateErr  error
	lastUpdate api.UserUpdate

	deleteErr error

	items  []models.WardrobeItem
	tryons []models.TryOn
}

func (f *fakeClient) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeClient) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.record("login")
	return f.loginToken, f.loginErr
}

func (f *fakeClient) RestoreAccount(ctx context.Context, email, password string) (string, error) {
	f.record("restore")
	return f.restoreToken, f.restoreErr
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) (string, error) {
	f.record("register")
	return f.registerSession, f.registerErr
}

func (f *fakeClient) VerifyOTP(ctx context.Context, sessionID, code string) (string, error) {
	f.record("verify")
	f.verifyCode = code
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return "Email verified", nil
}

func (f *fakeClient) ResendOTP(ctx context.Context, sessionID string) error {
	f.record("resend")
	return nil
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	f.record("forgot")
	return "reset-session", nil
}

func (f *fakeClient) ResetPassword(ctx context.Context, sessionID, code, newPassword string) error {
	f.record("reset")
	return nil
}

func (f *fakeClient) GetUser(ctx context.Context) (*models.User, error) {
	f.record("getuser")
	return f.user, f.getUserErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, upd api.UserUpdate) error {
	f.record("updateuser")
	f.lastUpdate = upd
	return f.updateErr
}

func (f *fakeClient) UploadProfilePic(ctx context.Context, path string) (string, error) {
	f.record("uploadpic")
	return "https://cdn.example.com/pic.jpg", nil
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error {
	f.record("deleteaccount")
	return f.deleteErr
}

func (f *fakeClient) ListWardrobeItems(ctx context.Context) ([]models.WardrobeItem, error) {
	f.record("listitems")
	return f.items, nil
}

func (f *fakeClient) AddWardrobeItem(ctx context.Context, attrs models.ItemAttrs, imagePath string) (*models.WardrobeItem, error) {
	f.record("additem")
	return &models.WardrobeItem{ID: "i1", Brand: attrs.Brand, Type: attrs.Type}, nil
}

func (f *fakeClient) UpdateWardrobeItem(ctx context.Context, id string, attrs models.ItemAttrs) (*models.WardrobeItem, error) {
	f.record("updateitem")
	return &models.WardrobeItem{ID: id}, nil
}

func (f *fakeClient) DeleteWardrobeItem(ctx context.Context, id string) (string, error) {
	f.record("deleteitem")
	return "Item deleted", nil
}

func (f *fakeClient) CreateTryOn(ctx context.Context, humanPath, garmentPath string) (*models.TryOn, error) {
	f.record("createtryon")
	return &models.TryOn{ID: "t1", ResultImageURL: "https://cdn.example.com/r.jpg"}, nil
}

func (f *fakeClient) ListTryOns(ctx context.Context) ([]models.TryOn, error) {
	f.record("listtryons")
	return f.tryons, nil
}

func (f *fakeClient) DeleteTryOn(ctx context.Context, id string) error {
	f.record("deletetryon")
	return nil
}

func (f *fakeClient) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	f.record("contact")
	return nil
}

func (f *fakeClient) GoogleAuthURL(redirectURI string) string {
	return "https://backend.example.com/auth/google?redirect_uri=" + redirectURI
}

// newTestApp builds an App around the fake client with an in-memory store.
// consoleInput becomes the reader behind confirmation prompts.
func newTestApp(t *testing.T, client api.Client, consoleInput string) (*App, *memStore, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	store := &memStore{}
	sessions := session.NewManager(store)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	prof := profile.NewCache(client, sessions, log)
	t.Cleanup(prof.Close)

	cfg := &config.Config{
		RequestTimeout: time.Second,
		ResendCooldown: 20 * time.Second,
	}

	reader := bufio.NewReader(strings.NewReader(consoleInput))
	a := &App{
		config:   cfg,
		log:      log,
		api:      client,
		store:    store,
		sessions: sessions,
		profile:  prof,
		guard:    guard.New(store),
		wardrobe: wardrobe.NewService(client, log),
		tryons:   tryon.NewService(client, log),

		reader: reader,
		out:    out,

		restoreFlow: flow.New(),
		deleteFlow:  flow.New(),
		itemFlow:    flow.New(),
		tryonFlow:   flow.New(),
	}
	a.ui = &consoleUI{reader: reader, out: out}
	return a, store, out
}

// stubPrompts routes getSimpleText answers by prompt substring and makes
// getPassword return the given password. isTerminal reports false so OTP
// entry falls back to line input.
func stubPrompts(t *testing.T, answers map[string]string, password string) {
	t.Helper()

	origText := getSimpleText
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		for sub, answer := range answers {
			if strings.Contains(prompt, sub) {
				return answer, nil
			}
		}
		return "", nil
	}
	t.Cleanup(func() { getSimpleText = origText })

	origPw := getPassword
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() { getPassword = origPw })

	origTerm := isTerminal
	isTerminal = func(fd int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })
}
