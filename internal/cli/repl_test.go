package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) GoogleLogin(ctx context.Context) error {
	return f.record("google")
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error {
	return f.record("forgot")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Profile(ctx context.Context) error  { return f.record("profile") }
func (f *fakeExec) SetPhone(ctx context.Context) error { return f.record("setphone") }
func (f *fakeExec) SetProfilePic(ctx context.Context) error {
	return f.record("setpic")
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	return f.record("deleteaccount")
}
func (f *fakeExec) Wardrobe(ctx context.Context) error { return f.record("wardrobe") }
func (f *fakeExec) AddItem(ctx context.Context) error  { return f.record("additem") }
func (f *fakeExec) EditItem(ctx context.Context) error { return f.record("edititem") }
func (f *fakeExec) DeleteItem(ctx context.Context) error {
	return f.record("delitem")
}
func (f *fakeExec) NewTryOn(ctx context.Context) error { return f.record("tryon") }
func (f *fakeExec) TryOns(ctx context.Context) error   { return f.record("tryons") }
func (f *fakeExec) SaveTryOn(ctx context.Context) error {
	return f.record("savetryon")
}
func (f *fakeExec) DeleteTryOn(ctx context.Context) error {
	return f.record("deltryon")
}
func (f *fakeExec) Contact(ctx context.Context) error { return f.record("contact") }
func (f *fakeExec) About()        { f.calls = append(f.calls, "about") }
func (f *fakeExec) FAQ()          { f.calls = append(f.calls, "faq") }
func (f *fakeExec) Testimonials() { f.calls = append(f.calls, "testimonials") }

func muteREPL(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteREPL(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"wardrobe",
		"additem",
		"tryon",
		"profile",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "wardrobe", "additem", "tryon", "profile", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, want := range wantOrder {
		if exec.calls[i] != want {
			t.Fatalf("call %d: want %q, got %q (all: %+v)", i, want, exec.calls[i], exec.calls)
		}
	}
	if exec.loggedIn {
		t.Fatalf("expected logged out after logout")
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteREPL(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("register\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
}

func TestRunREPL_InformationalPages(t *testing.T) {
	muteREPL(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("about\nfaq\ntestimonials\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"about", "faq", "testimonials"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, w := range want {
		if exec.calls[i] != w {
			t.Fatalf("call %d: want %q, got %q", i, w, exec.calls[i])
		}
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	muteREPL(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("\n   \nabout\nquit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "about" {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
}
