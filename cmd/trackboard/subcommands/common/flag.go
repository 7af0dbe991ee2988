package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/opst/trackboard/pkg/utils"
)

const (
	ProfileFile = ".trackboardprofile"
	EnvFile     = "trackboardenv"
	DotenvFile  = ".env"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to profile store file"`
	Env          string `flag:"env" help:"path to trackboardenv file"`
	Dotenv       string `flag:"dotenv" help:"path to .env file providing TRACKBOARD_TOKEN and TRACKBOARD_CSRF_TOKEN"`
	Verbose      bool   `flag:"verbose" alias:"v" help:"log locations visited"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default flags for commands run in the directory from.
//
// The profile name is the first line of the nearest ".trackboardprofile" file,
// or the absolute path of from if not found.
// "trackboardenv" and ".env" are the nearest ones in from or its ancestors,
// or ones in from if not found.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := utils.ApplyAll(&commonFlagDetection{}, opt...)

	home := detparam.home
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	if abs, err := filepath.Abs(from); err == nil {
		from = abs
	}

	profile := from
	if p, err := utils.FindUpward(from, ProfileFile); err == nil {
		content, err := os.ReadFile(p)
		if err != nil {
			return CommonFlags{}, err
		}
		first, _, _ := strings.Cut(string(content), "\n")
		if name := strings.TrimSpace(first); name != "" {
			profile = name
		}
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: filepath.Join(home, ".trackboard", "profile"),
		Env:          nearest(from, EnvFile),
		Dotenv:       nearest(from, DotenvFile),
	}, nil
}

func nearest(from string, name string) string {
	if p, err := utils.FindUpward(from, name); err == nil {
		return p
	}
	return filepath.Join(from, name)
}
