package gitctx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/dshills/aimend/internal/message"
)

// prettyFormat renders a commit as a single colored line: abbreviated hash,
// commit date, author, subject, and any decorating refs.
const prettyFormat = "%Cred%h%Creset - %Cgreen(%ci)%Creset [%C(yellow)%aN%Creset] %s%C(yellow)%d%Creset"

// ResolveCommit resolves ref to a full commit hash. "@" is accepted as an
// alias for HEAD. Resolution happens in-process via go-git, so a bad ref
// fails fast without spawning git.
func ResolveCommit(ref string) (string, error) {
	repo, err := openRepo()
	if err != nil {
		return "", err
	}
	return resolve(repo, ref)
}

// IsHead reports whether ref names the commit HEAD points at.
func IsHead(ref string) (bool, error) {
	if ref == "HEAD" || ref == "@" {
		return true, nil
	}
	repo, err := openRepo()
	if err != nil {
		return false, err
	}
	target, err := resolve(repo, ref)
	if err != nil {
		return false, err
	}
	head, err := resolve(repo, "HEAD")
	if err != nil {
		return false, err
	}
	return target == head, nil
}

func openRepo() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

func resolve(repo *git.Repository, ref string) (string, error) {
	if ref == "@" {
		ref = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", ref, err)
	}
	return hash.String(), nil
}

// Show returns the commit's textual representation for mode. The exact
// bytes matter here: stripping and prompting both depend on git's own
// formatting, so this shells out rather than reassembling the output from
// go-git objects. An unknown mode panics.
func Show(ref string, mode message.Mode) (string, error) {
	var args []string
	switch mode {
	case message.ModeMessage:
		args = []string{"log", "-n1", "--pretty=%B", ref}
	case message.ModeDefault:
		args = []string{"log", "-n1", "--no-color", "--format=medium", ref}
	case message.ModeFull:
		args = []string{"show", "--no-color", "--format=fuller", ref}
	default:
		panic(fmt.Sprintf("gitctx: unknown mode %q", mode))
	}
	out, err := gitOutput(args...)
	if err != nil {
		return "", fmt.Errorf("git %s %s: %w", args[0], ref, err)
	}
	return out, nil
}

// PrettyLine returns a colored one-line summary of the commit.
func PrettyLine(ref string) (string, error) {
	out, err := gitOutput("log", "-n1", "--color=always", "--no-show-signature",
		"--pretty=format:"+prettyFormat, "--abbrev-commit", "--date=local", ref)
	if err != nil {
		return "", fmt.Errorf("git log %s: %w", ref, err)
	}
	return strings.TrimSpace(out), nil
}

// Amend rewrites the message of the commit HEAD points at.
func Amend(msg string) error {
	if _, err := gitOutput("commit", "--amend", "-m", msg); err != nil {
		return fmt.Errorf("git commit --amend: %w", err)
	}
	return nil
}

// AmendEditor opens git's interactive amend editor attached to the
// terminal, giving the new message a final manual pass. Hooks and message
// cleanup run exactly as they would for a hand-typed amend.
func AmendEditor() error {
	cmd := exec.Command("git", "commit", "--amend")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit --amend: %w", err)
	}
	return nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
