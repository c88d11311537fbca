package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v63/github"
	"github.com/projecteur/projecteur/config"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// updateCheckInterval is the minimum spacing between two release queries.
const updateCheckInterval = 10 * time.Minute

// ErrCheckThrottled is returned when an update check is requested too soon after the previous one.
var ErrCheckThrottled = errors.New("update check throttled")

// CheckForUpdatesResult holds the outcome of the update check.
type CheckForUpdatesResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// UpdateChecker polls GitHub for the latest stable release.
// Concurrent calls to Check share one request.
type UpdateChecker struct {
	client  *github.Client
	version string
	limiter *rate.Limiter
	group   singleflight.Group
}

// NewUpdateChecker creates a checker comparing releases against currentVersion.
// A nil httpClient uses http.DefaultClient.
func NewUpdateChecker(httpClient *http.Client, currentVersion string) *UpdateChecker {
	return &UpdateChecker{
		client:  github.NewClient(httpClient),
		version: currentVersion,
		limiter: rate.NewLimiter(rate.Every(updateCheckInterval), 1),
	}
}

// Check fetches the latest release and reports whether it is newer than the running version.
func (uc *UpdateChecker) Check(ctx context.Context) (*CheckForUpdatesResult, error) {
	v, err, _ := uc.group.Do("latest", func() (interface{}, error) {
		if !uc.limiter.Allow() {
			return nil, ErrCheckThrottled
		}
		return uc.fetchLatest(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*CheckForUpdatesResult), nil
}

func (uc *UpdateChecker) fetchLatest(ctx context.Context) (*CheckForUpdatesResult, error) {
	release, _, err := uc.client.Repositories.GetLatestRelease(ctx, config.ReleaseOwner, config.ReleaseRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	currentVersion := canonicalVersion(uc.version)
	latestVersion := canonicalVersion(release.GetTagName())

	result := &CheckForUpdatesResult{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		ReleaseURL:     release.GetHTMLURL(),
		ReleaseNotes:   release.GetBody(),
	}

	if semver.IsValid(latestVersion) && semver.Compare(latestVersion, currentVersion) > 0 {
		result.UpdateAvailable = true
	}

	return result, nil
}

// canonicalVersion prefixes v for semantic version comparison.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
