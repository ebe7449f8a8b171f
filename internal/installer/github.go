package installer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"devsetup/internal/config"
	"devsetup/internal/logger"
)

// githubRelease is the subset of the GitHub release JSON response we need.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// installFromGitHub resolves a release by repo and tag, downloads the archive
// asset matching the local OS and architecture, extracts it, and installs the
// contained executables into binDir. It returns the installed path.
func installFromGitHub(spec config.TaskSpec, binDir string) (string, error) {
	tag := spec.Tag
	if tag == "" {
		tag = "v" + spec.Version
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", spec.Repo, tag)
	logger.Debug("Fetching GitHub release: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release %s@%s: %w", spec.Repo, tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release fetch for %s@%s returned HTTP %d", spec.Repo, tag, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode release JSON for %s@%s: %w", spec.Repo, tag, err)
	}
	logger.Debug("Release %s has %d assets\n", release.TagName, len(release.Assets))

	assetURL, assetName := matchAsset(release)
	if assetURL == "" {
		return "", fmt.Errorf("no archive asset for %s/%s in release %s", runtime.GOOS, runtime.GOARCH, release.TagName)
	}

	tmp := filepath.Join(os.TempDir(), assetName)
	logger.Info("Downloading %s\n", assetName)
	if err := downloadFile(assetURL, tmp); err != nil {
		return "", fmt.Errorf("failed to download asset %s: %w", assetName, err)
	}

	return extractAndInstall(tmp, spec.Name, binDir)
}

// matchAsset picks the first archive asset whose filename matches one of the
// preferred OS/arch patterns for the local platform.
func matchAsset(release githubRelease) (url, name string) {
	for _, pattern := range assetPatterns() {
		for _, asset := range release.Assets {
			lower := strings.ToLower(asset.Name)
			if strings.Contains(lower, pattern) && isArchive(lower) {
				logger.Debug("Matched asset %s against pattern %s\n", asset.Name, pattern)
				return asset.BrowserDownloadURL, asset.Name
			}
		}
	}
	return "", ""
}

// assetPatterns builds the preferred asset filename patterns for the local
// platform. Release naming varies across projects ("linux_amd64",
// "linux-x86_64", "aarch64-apple-darwin"), so each OS/arch alias pair is
// tried with both separators.
func assetPatterns() []string {
	osAliases := map[string][]string{
		"linux":  {"linux"},
		"darwin": {"darwin", "macos", "apple-darwin"},
	}[runtime.GOOS]
	if len(osAliases) == 0 {
		osAliases = []string{runtime.GOOS}
	}

	archAliases := map[string][]string{
		"amd64": {"amd64", "x86_64"},
		"arm64": {"arm64", "aarch64"},
	}[runtime.GOARCH]
	if len(archAliases) == 0 {
		archAliases = []string{runtime.GOARCH}
	}

	var patterns []string
	for _, o := range osAliases {
		for _, a := range archAliases {
			patterns = append(patterns, o+"_"+a, o+"-"+a, a+"-"+o)
		}
	}
	// Last resort: OS name alone, for single-arch releases.
	patterns = append(patterns, osAliases...)
	return patterns
}
