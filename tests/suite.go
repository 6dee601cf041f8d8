package tests

import (
	"context"
	"flag"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

const baseURL = "http://localhost:3000"

type BrowserSuite struct {
	suite.Suite
	server *serverProcess
}

var serverBinary string

func init() {
	flag.StringVar(&serverBinary, "server-binary", "", "path to a built server binary; suite is skipped when empty")
}

func (s *BrowserSuite) SetupSuite() {
	if serverBinary == "" {
		s.T().Skip("-server-binary not set")
	}
	server, err := startServer(serverBinary)
	if err != nil {
		s.T().Fatalf("cannot start server: %v", err)
	}
	s.server = server
	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("server never came up: %v\n%s", err, server.Output())
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *BrowserSuite) TearDownSuite() {
	if s.server == nil {
		return
	}
	exitCode, err := s.server.Stop()
	if err != nil {
		s.T().Logf("cannot stop server: %v", err)
	}
	s.T().Logf("server exited with code %d, output:\n%s", exitCode, s.server.Output())
}

func (s *BrowserSuite) TestGuestAccess() {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	defer cancelTimeout()
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(ctx,
		s.checkGuestRedirected(baseURL+"/matches"),
		s.checkGuestRedirected(baseURL+"/trainings"),
		s.checkGuestRedirected(baseURL+"/players"),
		s.checkGuestRedirected(baseURL+"/users"),
		s.checkGuestAccessGranted(baseURL+"/"),
		s.checkGuestAccessGranted(baseURL+"/signin"),
	)
	s.Require().NoError(err)
}

func (s *BrowserSuite) TestAdminSignIn() {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	defer cancelTimeout()
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var location string
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/signin"),
		chromedp.SendKeys(`input[name="username"]`, "admin"),
		chromedp.SendKeys(`input[name="password"]`, "changeme"),
		chromedp.Click(`button[type="submit"]`),
		chromedp.WaitVisible(`nav`),
		chromedp.Location(&location),
	)
	s.Require().NoError(err)
	s.Equal(baseURL+"/", location)
}

// checkGuestRedirected asserts the gate sends anonymous visitors to the
// sign-in page.
func (s *BrowserSuite) checkGuestRedirected(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			if _, err := chromedp.RunResponse(ctx, chromedp.Navigate(path)); err != nil {
				return err
			}
			var location string
			if err := chromedp.Location(&location).Do(ctx); err != nil {
				return err
			}
			if !strings.HasSuffix(location, "/signin") {
				s.T().Errorf("guest access to %s should redirect to /signin, landed on %s", path, location)
			}
			return nil
		}),
	}
}

func (s *BrowserSuite) checkGuestAccessGranted(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("guest access to %s should be allowed, got status %d", path, resp.Status)
			}
			return nil
		}),
	}
}
