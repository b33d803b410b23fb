package sshfs

import (
	"strconv"
	"strings"

	"github.com/dendrascience/sftp-mounts/config"
)

var (
	keyOptions      = []string{"allow_other", "reconnect", "workaround=truncate:rename"}
	passwordOptions = []string{"password_stdin", "reconnect", "allow_other", "workaround=truncate:rename"}
)

const redactedSecret = "********"

// Invocation is one external process call.
type Invocation struct {
	Name string
	Args []string
	// Stdin is fed to the process; for password mounts it holds the password.
	Stdin string
	// Secret marks Stdin as sensitive.
	Secret bool
}

// BuildMount returns the sshfs invocation attaching b at mountDir.
func BuildMount(b config.Bookmark, mountDir string, opts config.SSHFSOptions) Invocation {
	binary := opts.Binary
	if binary == "" {
		binary = "sshfs"
	}

	if b.UsesKey() {
		options := append([]string{"IdentityFile=" + b.Key}, keyOptions...)
		options = append(options, opts.ExtraOptions...)
		return Invocation{
			Name: binary,
			Args: []string{
				"-o", strings.Join(options, ","),
				"-p", strconv.Itoa(b.Port),
				b.Remote(),
				mountDir,
			},
		}
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 8
	}
	options := []string{
		"ConnectTimeout=" + strconv.Itoa(timeout),
		"PreferredAuthentications=password",
		"StrictHostKeyChecking=no",
	}
	options = append(options, passwordOptions...)
	options = append(options, opts.ExtraOptions...)
	return Invocation{
		Name: binary,
		Args: []string{
			"-p", strconv.Itoa(b.Port),
			"-o", strings.Join(options, ","),
			b.Remote(),
			mountDir,
		},
		Stdin:  b.Pass + "\n",
		Secret: true,
	}
}

// BuildUnmount returns the invocation detaching mountDir.
func BuildUnmount(mountDir string, opts config.UnmountOptions) Invocation {
	binary := opts.Binary
	if binary == "" {
		binary = "umount"
	}
	return Invocation{Name: binary, Args: []string{mountDir}}
}

// ShellEscape backslash-escapes every character outside [0-9a-zA-Z].
func ShellEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if !isAlnum(r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// quoteArg leaves plain words alone and escapes anything else.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if isAlnum(r) || strings.ContainsRune("-_./:@=,+%", r) {
			continue
		}
		return ShellEscape(s)
	}
	return s
}

func (inv Invocation) render(secret string) string {
	parts := make([]string, 0, len(inv.Args)+4)
	if inv.Stdin != "" {
		parts = append(parts, "echo", secret, "|")
	}
	parts = append(parts, quoteArg(inv.Name))
	for _, a := range inv.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

// String renders the shell-equivalent command line, password included.
func (inv Invocation) String() string {
	return inv.render(ShellEscape(strings.TrimSuffix(inv.Stdin, "\n")))
}

// Redacted renders the command line with any secret masked.
func (inv Invocation) Redacted() string {
	if inv.Secret {
		return inv.render(redactedSecret)
	}
	return inv.String()
}
