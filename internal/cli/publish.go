package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ytget/play-publisher/internal/config"
	"github.com/ytget/play-publisher/internal/model"
	"github.com/ytget/play-publisher/internal/platform"
	"github.com/ytget/play-publisher/internal/publish"
)

// publishOptions holds the flags of the publish command. Empty values are
// filled from the profile when one is given.
type publishOptions struct {
	Profile     string
	KeyFile     string
	AppName     string
	PackageName string
	Track       string
	Status      string
	Artifact    string
	Kind        string
	Notes       string
	NotesFile   string
	Language    string
}

func (o *publishOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "TOML or YAML file with publish defaults",
			Destination: &o.Profile,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_PROFILE"),
		},
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "Service account key file (JSON)",
			Destination: &o.KeyFile,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Application name sent as user agent",
			Destination: &o.AppName,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_APP_NAME"),
		},
		&cli.StringFlag{
			Name:        "package",
			Aliases:     []string{"p"},
			Usage:       "Package name, e.g. com.example.app",
			Destination: &o.PackageName,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_PACKAGE"),
		},
		&cli.StringFlag{
			Name:        "track",
			Aliases:     []string{"t"},
			Usage:       "Release track (internal, alpha, beta, production)",
			Destination: &o.Track,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_TRACK"),
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Release status (completed, draft, halted, inProgress)",
			Destination: &o.Status,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_STATUS"),
		},
		&cli.StringFlag{
			Name:        "artifact",
			Aliases:     []string{"a"},
			Usage:       "APK or App Bundle to upload",
			Destination: &o.Artifact,
		},
		&cli.StringFlag{
			Name:        "kind",
			Usage:       "Artifact kind (apk, bundle); guessed from the extension when empty",
			Destination: &o.Kind,
		},
		&cli.StringFlag{
			Name:        "notes",
			Usage:       "Release notes text",
			Destination: &o.Notes,
		},
		&cli.StringFlag{
			Name:        "notes-file",
			Usage:       "File holding the release notes",
			Destination: &o.NotesFile,
		},
		&cli.StringFlag{
			Name:        "language",
			Usage:       "Language code of the release notes",
			Destination: &o.Language,
			Sources:     cli.EnvVars("PLAY_PUBLISHER_LANGUAGE"),
		},
	}
}

// applyProfile fills empty options from the profile file
func (o *publishOptions) applyProfile() error {
	if o.Profile == "" {
		return nil
	}
	profile, err := config.LoadProfile(o.Profile)
	if err != nil {
		return err
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&o.AppName, profile.AppName)
	fill(&o.PackageName, profile.PackageName)
	fill(&o.Track, profile.Track)
	fill(&o.Status, profile.Status)
	fill(&o.KeyFile, profile.KeyFile)
	fill(&o.Language, profile.LanguageCode)
	return nil
}

// request builds the publish request and the release notes
func (o *publishOptions) request() (model.PublishRequest, model.ReleaseNotes, error) {
	var req model.PublishRequest
	var notes model.ReleaseNotes

	if err := o.applyProfile(); err != nil {
		return req, notes, err
	}
	if o.Artifact == "" {
		return req, notes, goerr.New("--artifact is required")
	}

	req = model.PublishRequest{
		AppName:     o.AppName,
		PackageName: o.PackageName,
		KeyFilePath: o.KeyFile,
	}

	var err error
	if o.Kind != "" {
		if req.Kind, err = model.ParseArtifactKind(o.Kind); err != nil {
			return req, notes, invalidFlag(err, "kind", o.Kind, kindNames())
		}
	} else if req.Kind, err = platform.KindFromPath(o.Artifact); err != nil {
		return req, notes, goerr.Wrap(err, "cannot determine artifact kind, use --kind", goerr.V("artifact", o.Artifact))
	}

	if o.Track != "" {
		if req.Track, err = model.ParseTrack(o.Track); err != nil {
			return req, notes, invalidFlag(err, "track", o.Track, trackNames())
		}
	}
	if o.Status != "" {
		if req.Status, err = model.ParseReleaseStatus(o.Status); err != nil {
			return req, notes, invalidFlag(err, "status", o.Status, statusNames())
		}
	}

	notes.Text = o.Notes
	if o.NotesFile != "" {
		if o.Notes != "" {
			return req, notes, goerr.New("--notes and --notes-file are mutually exclusive")
		}
		data, err := os.ReadFile(o.NotesFile)
		if err != nil {
			return req, notes, goerr.Wrap(err, "failed to read notes file", goerr.V("path", o.NotesFile))
		}
		notes.Text = string(data)
	}
	notes.Text = strings.TrimSpace(notes.Text)
	notes.Language = strings.TrimSpace(o.Language)
	if notes.Language == "" {
		notes.Language = model.DefaultLanguageCode
	}

	return req.Normalized(), notes, nil
}

// invalidFlag wraps a parse error, naming the closest known value if any
func invalidFlag(err error, flag, value string, choices []string) error {
	msg := "invalid --" + flag
	if s := suggest(value, choices); s != "" {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	return goerr.Wrap(err, msg, goerr.V(flag, value))
}

// staticPrompter answers the workflow prompts with values given up front
type staticPrompter struct {
	artifact string
	notes    model.ReleaseNotes
}

func (p *staticPrompter) ChooseArtifact(ctx context.Context, kind model.ArtifactKind) (string, error) {
	if p.artifact == "" {
		return "", goerr.Wrap(publish.ErrCancelled, "no artifact given")
	}
	return p.artifact, nil
}

func (p *staticPrompter) ReleaseNotes(ctx context.Context, versionCode int64) (model.ReleaseNotes, error) {
	return p.notes, nil
}

func cmdPublish() *cli.Command {
	var opts publishOptions

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Upload an artifact without opening the window",
		Flags:   opts.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runPublish(ctx, &opts, os.Stdout)
		},
	}
}

func runPublish(ctx context.Context, opts *publishOptions, w io.Writer, svcOpts ...publish.Option) error {
	req, notes, err := opts.request()
	if err != nil {
		return err
	}

	logger := slog.Default()
	prompter := &staticPrompter{artifact: opts.Artifact, notes: notes}
	svc := publish.NewService(prompter, append([]publish.Option{publish.WithLogger(logger)}, svcOpts...)...)
	svc.SetUpdateCallback(func(task *model.PublishTask) {
		logger.Debug("publish state", slog.String("state", task.State.String()))
	})

	task, err := svc.Publish(ctx, req)
	if err != nil {
		printFailure(w, task, err)
		return err
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(w, "✔ ")
	fmt.Fprintf(w, "App edit with id %s has been committed!\n", task.CommitID)
	fmt.Fprintf(w, "  %s\n", task.Summary())
	return nil
}

func printFailure(w io.Writer, task *model.PublishTask, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, "✘ ")

	switch publish.Classify(err) {
	case publish.KindRemote:
		fmt.Fprintln(w, "App could not be uploaded! Transaction was rolled back.")
		if task != nil && task.FailedStep != "" {
			fmt.Fprintf(w, "  failed at %s\n", task.FailedStep)
		}
	case publish.KindCredential:
		fmt.Fprintln(w, "Could not create service!")
	case publish.KindValidation:
		fmt.Fprintln(w, "Please specify the key file, app name and package name")
	default:
		fmt.Fprintln(w, err.Error())
	}
}
