package registry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"

	"github.com/bbpm-labs/bbpm/internal/fetch"
	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// FileWriter writes a file's full contents, replacing what was there.
type FileWriter interface {
	Write(name, data string) error
}

// LedgerStore records installed references.
type LedgerStore interface {
	RecordInstalled(refs []manifest.Reference) error
}

// FileResult is the outcome of installing one manifest entry.
type FileResult struct {
	Ref    manifest.Reference
	Path   string // destination as declared in the manifest
	Target string // normalized path written to
	URL    string
	Err    error
}

// OK reports whether the file was downloaded and written.
func (f FileResult) OK() bool {
	return f.Err == nil
}

// PackageReport is the outcome of installing one package.
type PackageReport struct {
	Ref     manifest.Reference
	Missing bool
	Files   []FileResult
}

// Failed returns the files that were not installed.
func (p PackageReport) Failed() []FileResult {
	var failed []FileResult
	for _, f := range p.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// InstallReport is the outcome of an install run.
type InstallReport struct {
	Packages  []PackageReport
	Installed []manifest.Reference
}

// FailedFiles counts files that were not installed across all packages.
func (r *InstallReport) FailedFiles() int {
	n := 0
	for _, p := range r.Packages {
		n += len(p.Failed())
	}
	return n
}

// Installer downloads manifest files and records installed packages.
type Installer struct {
	fetcher  fetch.Fetcher
	fs       FileWriter
	ledger   LedgerStore
	log      zerolog.Logger
	progress func(FileResult)
}

// InstallerOption configures an Installer.
type InstallerOption func(*Installer)

// WithLogger sets the installer's logger.
func WithLogger(log zerolog.Logger) InstallerOption {
	return func(in *Installer) {
		in.log = log
	}
}

// WithProgress registers a callback invoked after every manifest entry.
func WithProgress(fn func(FileResult)) InstallerOption {
	return func(in *Installer) {
		in.progress = fn
	}
}

// NewInstaller returns an Installer writing through fs and recording into ledger.
func NewInstaller(fetcher fetch.Fetcher, fs FileWriter, ledger LedgerStore, opts ...InstallerOption) *Installer {
	in := &Installer{
		fetcher: fetcher,
		fs:      fs,
		ledger:  ledger,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Install installs each reference in order. A file that fails to download
// or write is reported and skipped; its package is still recorded. A
// reference that no longer resolves is reported as Missing and not
// recorded. The error return is reserved for failing to update the ledger.
func (in *Installer) Install(ctx context.Context, refs []manifest.Reference, r Resolver) (*InstallReport, error) {
	report := &InstallReport{}

	for _, ref := range refs {
		pkg, ok := r.Resolve(ref)
		if !ok {
			in.log.Error().Str("ref", string(ref)).Msg("Package disappeared from catalog during install")
			report.Packages = append(report.Packages, PackageReport{Ref: ref, Missing: true})
			continue
		}

		pr := PackageReport{Ref: ref}
		for _, dest := range pkg.Manifest.Paths() {
			res := in.installFile(ctx, ref, dest, pkg.Manifest[dest])
			pr.Files = append(pr.Files, res)
			if in.progress != nil {
				in.progress(res)
			}
		}
		report.Packages = append(report.Packages, pr)
		report.Installed = append(report.Installed, ref)
	}

	if len(report.Installed) > 0 {
		if err := in.ledger.RecordInstalled(report.Installed); err != nil {
			return report, fmt.Errorf("recording installed packages: %w", err)
		}
	}
	return report, nil
}

func (in *Installer) installFile(ctx context.Context, ref manifest.Reference, dest, url string) FileResult {
	res := FileResult{Ref: ref, Path: dest, Target: NormalizePath(dest), URL: url}
	log := in.log.With().Str("ref", string(ref)).Str("file", dest).Str("url", url).Logger()

	resp, err := in.fetcher.Get(ctx, url)
	if err != nil {
		res.Err = err
		log.Warn().Err(err).Msg("Download failed")
		return res
	}
	if !resp.OK() {
		res.Err = zerr.With(fmt.Errorf("%w: status %d", fetch.ErrTransportFailure, resp.StatusCode), "url", url)
		log.Warn().Int("status", resp.StatusCode).Msg("Download failed")
		return res
	}

	if err := in.fs.Write(res.Target, resp.Body); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", res.Target, err)
		log.Warn().Err(err).Msg("Write failed")
		return res
	}
	log.Debug().Str("target", res.Target).Msg("File installed")
	return res
}

// InstallReference installs ref and its dependency closure. Nothing is
// written when ref is unknown or any dependency is unresolvable.
func (in *Installer) InstallReference(ctx context.Context, ref manifest.Reference, r Resolver) (*Closure, *InstallReport, error) {
	if _, ok := r.Resolve(ref); !ok {
		return nil, nil, zerr.With(fmt.Errorf("%w: %s", ErrReferenceNotFound, ref), "ref", string(ref))
	}

	closure := Close(ref, r)
	if err := closure.Err(); err != nil {
		in.log.Error().Strs("unresolvable", refStrings(closure.Unresolvable)).Msg("Refusing to install")
		return closure, nil, err
	}

	report, err := in.Install(ctx, closure.Resolved, r)
	return closure, report, err
}

func refStrings(refs []manifest.Reference) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = string(ref)
	}
	return out
}
