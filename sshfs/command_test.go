package sshfs

import (
	"testing"

	"github.com/dendrascience/sftp-mounts/config"
	"github.com/stretchr/testify/assert"
)

func TestShellEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dollar", in: "ab$c", want: `ab\$c`},
		{name: "alphanumeric only", in: "Secret123", want: "Secret123"},
		{name: "every symbol", in: `a b'c"d;e`, want: `a\ b\'c\"d\;e`},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "empty", in: "", want: ""},
		{name: "non ascii", in: "pä", want: `p\ä`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShellEscape(tt.in))
		})
	}
}

func TestBuildMountWithKey(t *testing.T) {
	b := config.Bookmark{Name: "web", Host: "web.example.com", Port: 2222, User: "deploy", Path: "/var/www", Key: "/keys/web"}

	inv := BuildMount(b, "/home/me/.sftp-mounts/web", config.SSHFSOptions{})

	assert.Equal(t, "sshfs", inv.Name)
	assert.Equal(t, []string{
		"-o", "IdentityFile=/keys/web,allow_other,reconnect,workaround=truncate:rename",
		"-p", "2222",
		"deploy@web.example.com:/var/www",
		"/home/me/.sftp-mounts/web",
	}, inv.Args)
	assert.Empty(t, inv.Stdin)
	assert.False(t, inv.Secret)
	assert.Equal(t, inv.String(), inv.Redacted())
}

func TestBuildMountKeyWinsOverPassword(t *testing.T) {
	b := config.Bookmark{Name: "web", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k", Pass: "secret"}

	inv := BuildMount(b, "/mnt/web", config.SSHFSOptions{})
	assert.Empty(t, inv.Stdin)
	assert.Contains(t, inv.Args[1], "IdentityFile=/k")
}

func TestBuildMountWithPassword(t *testing.T) {
	b := config.Bookmark{Name: "nas", Host: "10.0.0.5", Port: 22, User: "me", Path: "/data", Pass: "ab$c"}

	inv := BuildMount(b, "/home/me/.sftp-mounts/nas", config.SSHFSOptions{Binary: "/usr/bin/sshfs", ConnectTimeout: 8})

	assert.Equal(t, "/usr/bin/sshfs", inv.Name)
	assert.Equal(t, []string{
		"-p", "22",
		"-o", "ConnectTimeout=8,PreferredAuthentications=password,StrictHostKeyChecking=no,password_stdin,reconnect,allow_other,workaround=truncate:rename",
		"me@10.0.0.5:/data",
		"/home/me/.sftp-mounts/nas",
	}, inv.Args)
	assert.Equal(t, "ab$c\n", inv.Stdin)
	assert.True(t, inv.Secret)

	assert.Equal(t, `echo ab\$c | /usr/bin/sshfs -p 22 -o ConnectTimeout=8,PreferredAuthentications=password,StrictHostKeyChecking=no,password_stdin,reconnect,allow_other,workaround=truncate:rename me@10.0.0.5:/data /home/me/.sftp-mounts/nas`, inv.String())
	assert.NotContains(t, inv.Redacted(), "ab")
	assert.Contains(t, inv.Redacted(), "echo ******** |")
}

func TestBuildMountExtraOptions(t *testing.T) {
	b := config.Bookmark{Name: "web", Host: "h", Port: 22, User: "u", Path: "/", Key: "/k"}

	inv := BuildMount(b, "/mnt/web", config.SSHFSOptions{ExtraOptions: []string{"follow_symlinks", "cache=no"}})
	assert.Equal(t, "IdentityFile=/k,allow_other,reconnect,workaround=truncate:rename,follow_symlinks,cache=no", inv.Args[1])
}

func TestBuildMountDefaultTimeout(t *testing.T) {
	b := config.Bookmark{Name: "nas", Host: "h", Port: 22, User: "u", Path: "/", Pass: "x"}

	inv := BuildMount(b, "/mnt/nas", config.SSHFSOptions{})
	assert.Contains(t, inv.Args[3], "ConnectTimeout=8,")
}

func TestBuildUnmount(t *testing.T) {
	inv := BuildUnmount("/home/me/.sftp-mounts/web", config.UnmountOptions{})
	assert.Equal(t, "umount", inv.Name)
	assert.Equal(t, []string{"/home/me/.sftp-mounts/web"}, inv.Args)
	assert.Equal(t, "umount /home/me/.sftp-mounts/web", inv.String())

	inv = BuildUnmount("/mnt/my share", config.UnmountOptions{Binary: "/bin/umount"})
	assert.Equal(t, "/bin/umount", inv.Name)
	assert.Equal(t, `/bin/umount \/mnt\/my\ share`, inv.String())
}
