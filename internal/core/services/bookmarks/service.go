package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/logging"
)

// Commands holds the external programs the service launches. Each value is a
// program followed by fixed arguments, separated by whitespace.
type Commands struct {
	Editor   string
	Picker   string
	Terminal string
}

// WorkingDirFunc resolves the directory a new bookmark points to.
type WorkingDirFunc func() (string, error)

type service struct {
	store   ports.BookmarkStore
	aliases ports.AliasFileWriter
	gen     ports.AliasGenerator
	runner  ports.ProcessRunner
	cmds    Commands
	getwd   WorkingDirFunc
}

// NewService creates a new bookmark service.
// It panics if any collaborator is nil.
func NewService(
	store ports.BookmarkStore,
	aliases ports.AliasFileWriter,
	gen ports.AliasGenerator,
	runner ports.ProcessRunner,
	cmds Commands,
	getwd WorkingDirFunc,
) ports.BookmarkService {
	if store == nil || aliases == nil || gen == nil || runner == nil || getwd == nil {
		panic("bookmarks.NewService: nil dependency")
	}
	return &service{
		store:   store,
		aliases: aliases,
		gen:     gen,
		runner:  runner,
		cmds:    cmds,
		getwd:   getwd,
	}
}

// Add appends a record for the working directory and regenerates the alias file.
// An empty name defaults to the last element of the directory.
func (s *service) Add(name string) (bookmark.Record, error) {
	log := logging.GetLogger("bookmarks")

	dir, err := s.getwd()
	if err != nil {
		return bookmark.Record{}, fmt.Errorf("could not resolve working directory: %w", err)
	}

	if name == "" {
		name = defaultName(dir)
		if name == "" {
			return bookmark.Record{}, &bookmark.InvalidNameError{
				Name:   name,
				Reason: fmt.Sprintf("no default name for %s, pass one explicitly", dir),
			}
		}
	}
	if err := bookmark.ValidateName(name); err != nil {
		return bookmark.Record{}, err
	}
	if err := bookmark.ValidatePath(dir); err != nil {
		return bookmark.Record{}, err
	}

	existing, err := s.storedNames()
	if err != nil {
		return bookmark.Record{}, err
	}
	if existing[name] {
		return bookmark.Record{}, fmt.Errorf("%w: %q", bookmark.ErrDuplicateName, name)
	}
	if !bookmark.AliasSafe(name) {
		log.Warn().Str("name", name).Msg("Bookmark name cannot be used as a shell alias, no alias will be generated for it")
	}

	line := bookmark.Encode(name, dir)
	if err := s.store.Append(line); err != nil {
		return bookmark.Record{}, fmt.Errorf("failed to add bookmark %q: %w", name, err)
	}
	log.Info().Str("name", name).Str("path", dir).Msg("Bookmark added")

	if _, err := s.Update(); err != nil {
		return bookmark.Record{}, err
	}
	return bookmark.Decode(line)
}

// defaultName is the last path element of dir, or "" when dir has none (e.g. "/").
func defaultName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}

// storedNames collects the names currently in the store. A store that does not
// exist yet holds no names; undecodable lines are ignored here and reported by Update.
func (s *service) storedNames() (map[string]bool, error) {
	names := make(map[string]bool)
	lines, err := s.store.ReadLines()
	if err != nil {
		if isNotExist(err) {
			return names, nil
		}
		return nil, err
	}
	for _, line := range lines {
		if rec, err := bookmark.Decode(line); err == nil {
			names[rec.Name] = true
		}
	}
	return names, nil
}

// List yields raw store lines, oldest first.
func (s *service) List() iter.Seq2[string, error] {
	return s.store.Lines()
}

// Records decodes the store, skipping blank lines. The first malformed line is an error.
func (s *service) Records() ([]bookmark.Record, error) {
	var records []bookmark.Record
	n := 0
	for line, err := range s.store.Lines() {
		if err != nil {
			return nil, err
		}
		n++
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := bookmark.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.store.Path(), withLine(err, n))
		}
		records = append(records, rec)
	}
	return records, nil
}

// Remove drops every record whose name equals name (case-sensitive) and regenerates aliases.
// Lines that do not decode are kept as they are.
func (s *service) Remove(name string) (int, error) {
	lines, err := s.store.ReadLines()
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if rec, err := bookmark.Decode(line); err == nil && rec.Name == name {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return 0, fmt.Errorf("%w: %q", bookmark.ErrBookmarkNotFound, name)
	}

	if err := s.store.Rewrite(kept); err != nil {
		return 0, fmt.Errorf("failed to remove bookmark %q: %w", name, err)
	}
	log := logging.GetLogger("bookmarks")
	log.Info().Str("name", name).Int("removed", removed).Msg("Bookmark removed")

	if _, err := s.Update(); err != nil {
		return removed, err
	}
	return removed, nil
}

// Edit opens the store in the editor and regenerates aliases after it exits,
// whatever its exit status.
func (s *service) Edit(ctx context.Context) error {
	if err := s.EditFile(ctx, s.store.Path()); err != nil {
		return err
	}
	_, err := s.Update()
	return err
}

// EditFile runs the editor on path in the foreground.
func (s *service) EditFile(ctx context.Context, path string) error {
	prog, args, err := splitCommand(s.cmds.Editor)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	status, err := s.runner.RunForeground(ctx, prog, append(args, path)...)
	if err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	if status != 0 {
		log := logging.GetLogger("bookmarks")
		log.Debug().Str("editor", prog).Int("status", status).Msg("Editor exited with non-zero status")
	}
	return nil
}

// Update rebuilds the whole alias file from the store. The file is only
// written once every line has been decoded, so a malformed store leaves it unchanged.
func (s *service) Update() (int, error) {
	lines, err := s.store.ReadLines()
	if err != nil {
		return 0, err
	}
	content, count, err := s.gen.Generate(lines)
	if err != nil {
		return 0, fmt.Errorf("failed to regenerate aliases from %s: %w", s.store.Path(), err)
	}
	if err := s.aliases.WriteAliases(content); err != nil {
		return 0, err
	}
	log := logging.GetLogger("bookmarks")
	log.Debug().Str("path", s.aliases.Path()).Int("aliases", count).Msg("Aliases regenerated")
	return count, nil
}

// Open pipes the store through the picker and starts a terminal in the chosen directory.
func (s *service) Open(ctx context.Context) (string, error) {
	lines, err := s.store.ReadLines()
	if err != nil {
		return "", err
	}
	var input strings.Builder
	for _, line := range lines {
		input.WriteString(line)
		input.WriteByte('\n')
	}

	prog, args, err := splitCommand(s.cmds.Picker)
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	out, status, err := s.runner.RunPiped(ctx, prog, args, strings.NewReader(input.String()))
	if err != nil {
		return "", fmt.Errorf("failed to run picker: %w", err)
	}
	if status != 0 {
		return "", &bookmark.ExternalProcessError{Command: s.cmds.Picker, ExitStatus: status}
	}

	choice := strings.TrimRight(out, "\r\n")
	if strings.TrimSpace(choice) == "" {
		return "", bookmark.ErrNoSelection
	}
	rec, err := bookmark.Decode(choice)
	if err != nil {
		return "", fmt.Errorf("could not parse picker selection: %w", err)
	}

	term, termArgs, err := splitCommand(s.cmds.Terminal)
	if err != nil {
		return "", fmt.Errorf("terminal: %w", err)
	}
	if err := s.runner.Start(term, append(termArgs, rec.Path)...); err != nil {
		return "", fmt.Errorf("failed to open terminal in %s: %w", rec.Path, err)
	}
	return rec.Path, nil
}

// Import appends records whose names are not stored yet (nor earlier in records)
// and regenerates aliases once. Names must be alias-safe and paths must pass
// bookmark.ValidatePath; any failure aborts before anything is written.
func (s *service) Import(records []bookmark.Record) (ports.ImportResult, error) {
	var result ports.ImportResult
	log := logging.GetLogger("bookmarks")

	for _, rec := range records {
		if err := bookmark.ValidateName(rec.Name); err != nil {
			return result, err
		}
		if !bookmark.AliasSafe(rec.Name) {
			return result, &bookmark.InvalidNameError{
				Name:   rec.Name,
				Reason: "imported names may only contain letters, digits, '.', '_', '+' and '-'",
			}
		}
		if err := bookmark.ValidatePath(rec.Path); err != nil {
			return result, fmt.Errorf("bookmark %q: %w", rec.Name, err)
		}
	}

	existing, err := s.storedNames()
	if err != nil {
		return result, err
	}
	for _, rec := range records {
		if existing[rec.Name] {
			log.Warn().Str("name", rec.Name).Msg("Bookmark already exists, skipping")
			result.Skipped = append(result.Skipped, rec)
			continue
		}
		line := bookmark.Encode(rec.Name, rec.Path)
		if err := s.store.Append(line); err != nil {
			return result, fmt.Errorf("failed to import bookmark %q: %w", rec.Name, err)
		}
		existing[rec.Name] = true
		added, _ := bookmark.Decode(line)
		result.Added = append(result.Added, added)
	}

	if len(result.Added) == 0 {
		return result, nil
	}
	if _, err := s.Update(); err != nil {
		return result, err
	}
	return result, nil
}

func splitCommand(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, bookmark.ErrEmptyCommand
	}
	return fields[0], fields[1:], nil
}

func withLine(err error, line int) error {
	var malformed *bookmark.MalformedRecordError
	if errors.As(err, &malformed) {
		malformed.Line = line
	}
	return err
}

func isNotExist(err error) bool {
	var openErr *bookmark.FileOpenError
	return errors.As(err, &openErr) && openErr.Op == "read" && errors.Is(openErr.Err, fs.ErrNotExist)
}
