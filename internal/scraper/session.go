package scraper

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/Nirvanjha2004/outflo/internal/config"
)

const loginURL = "https://www.linkedin.com/login"

// Session owns one headless browser session against LinkedIn. A run either
// restores a persisted cookie bundle or performs an interactive login, after
// which the cookie bundle is saved so the next run can skip the login form.
type Session struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
}

func newSession(cfg *config.Config) *Session {
	return &Session{cfg: cfg}
}

// EnsureAuthenticated returns a page with an authenticated LinkedIn session.
// Idempotent: the second call reuses the already authenticated page.
func (s *Session) EnsureAuthenticated() (*rod.Page, error) {
	if s.page != nil {
		return s.page, nil
	}

	if err := s.initBrowser(); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	if s.restoreCookies() {
		log.Println("Loaded LinkedIn cookies, skipping interactive login")
	} else if err := s.login(); err != nil {
		return nil, err
	}

	return s.page, nil
}

// Close releases the browser session. Safe to call on a partially
// initialized session.
func (s *Session) Close() {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			log.Printf("Error closing browser: %v", err)
		}
		s.browser = nil
		s.page = nil
	}
}

func (s *Session) initBrowser() error {
	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-gpu").
		Set("disable-extensions").
		Set("window-size", "1920,1080").
		Set("user-agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	if chromiumPath := findChromiumPath(); chromiumPath != "" {
		l = l.Bin(chromiumPath)
	}

	if isDockerEnvironment() {
		l = l.Set("disable-setuid-sandbox").
			Set("no-first-run").
			Set("disable-default-apps").
			Set("single-process")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return err
	}

	s.browser = rod.New().ControlURL(controlURL)
	if err := s.browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	// Stealth page masks the usual headless automation fingerprints
	page, err := stealth.Page(s.browser)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	s.page = page

	return nil
}

// restoreCookies loads the persisted cookie bundle, if any, into the browser.
// The bundle is opaque: present and parseable means the session is assumed
// authenticated, anything else falls through to interactive login.
func (s *Session) restoreCookies() bool {
	data, err := os.ReadFile(s.cfg.CookiesPath)
	if err != nil {
		return false
	}

	var cookies []*proto.NetworkCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		log.Printf("Ignoring unreadable cookie bundle %s: %v", s.cfg.CookiesPath, err)
		return false
	}

	if err := s.browser.SetCookies(proto.CookiesToParams(cookies)); err != nil {
		log.Printf("Failed to restore cookies: %v", err)
		return false
	}

	return true
}

func (s *Session) saveCookies() error {
	cookies, err := s.browser.GetCookies()
	if err != nil {
		return fmt.Errorf("failed to read session cookies: %w", err)
	}

	data, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("failed to encode cookies: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.cfg.CookiesPath), 0755); err != nil {
		return fmt.Errorf("failed to create cookie directory: %w", err)
	}

	return os.WriteFile(s.cfg.CookiesPath, data, 0600)
}

func (s *Session) login() error {
	if s.cfg.LinkedInEmail == "" || s.cfg.LinkedInPassword == "" {
		return ErrCredentialsMissing
	}

	log.Println("Logging in to LinkedIn...")

	if err := s.page.Navigate(loginURL); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}
	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("login page did not load: %w", err)
	}

	if err := s.fill("#username", s.cfg.LinkedInEmail); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	if err := s.fill("#password", s.cfg.LinkedInPassword); err != nil {
		return err
	}
	time.Sleep(time.Second)

	submit, err := s.page.Element(`button[type="submit"]`)
	if err != nil {
		return fmt.Errorf("login submit button not found: %w", err)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}

	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("post-login page did not settle: %w", err)
	}
	time.Sleep(2 * time.Second)

	info, err := s.page.Info()
	if err != nil {
		return fmt.Errorf("failed to inspect post-login page: %w", err)
	}
	if err := classifyPostLoginURL(info.URL); err != nil {
		return err
	}

	log.Println("Successfully logged in to LinkedIn")

	if err := s.saveCookies(); err != nil {
		// Login still succeeded, the next run just repeats it
		log.Printf("Failed to persist cookie bundle: %v", err)
	} else {
		log.Printf("Saved LinkedIn cookies to %s", s.cfg.CookiesPath)
	}

	return nil
}

func (s *Session) fill(selector, value string) error {
	el, err := s.page.Element(selector)
	if err != nil {
		return fmt.Errorf("login field %s not found: %w", selector, err)
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// classifyPostLoginURL decides whether the destination reached after
// submitting credentials is an authenticated landing page. A security
// checkpoint is a failure: the session cannot be used for scraping.
func classifyPostLoginURL(currentURL string) error {
	switch {
	case strings.Contains(currentURL, "linkedin.com/feed"),
		strings.Contains(currentURL, "linkedin.com/home"):
		return nil
	case strings.Contains(currentURL, "linkedin.com/checkpoint"):
		return &AuthenticationError{URL: currentURL, Reason: "verification checkpoint"}
	default:
		return &AuthenticationError{URL: currentURL, Reason: "unrecognized destination"}
	}
}

// findChromiumPath looks for a Chromium/Chrome binary in common locations.
func findChromiumPath() string {
	if chromeBin := os.Getenv("CHROME_BIN"); chromeBin != "" {
		if _, err := os.Stat(chromeBin); err == nil {
			return chromeBin
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/opt/google/chrome/chrome",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// isDockerEnvironment checks if running inside a container.
func isDockerEnvironment() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		return strings.Contains(string(data), "docker") || strings.Contains(string(data), "containerd")
	}

	return false
}
