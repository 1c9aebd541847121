package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-x"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "picks owned flags with values",
			args:    []string{"-a", ":50051", "-c", "server.json", "-x", "30"},
			allowed: serverFlags,
			want:    []string{"-a", ":50051", "-x", "30"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=postgres://db/diary", "-config=server.json"},
			allowed: serverFlags,
			want:    []string{"-d=postgres://db/diary"},
		},
		{
			name:    "config layer sees only its flag",
			args:    []string{"-a", ":50051", "-config", "diary.yaml", "-u", "alice"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config", "diary.yaml"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-u", "alice", "-x"},
			allowed: serverFlags,
			want:    []string{"-x"},
		},
		{
			name:    "next flag is not consumed as value",
			args:    []string{"-a", "-d", "postgres://db/diary"},
			allowed: serverFlags,
			want:    []string{"-a", "-d", "postgres://db/diary"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"sync", "-a", ":50051", "extra"},
			allowed: serverFlags,
			want:    []string{"-a", ":50051"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-x", "5", "-x", "10"},
			allowed: serverFlags,
			want:    []string{"-x", "5", "-x", "10"},
		},
		{
			name:    "nothing owned",
			args:    []string{"-u", "alice"},
			allowed: serverFlags,
			want:    []string{},
		},
		{
			name:    "no args",
			args:    nil,
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterArgs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"recipediary", "-c", "diary.yaml"}, "diary.yaml"},
		{"long", []string{"recipediary", "-config", "server.json"}, "server.json"},
		{"equals", []string{"recipediary", "-config=diary.yml", "-u", "bob"}, "diary.yml"},
		{"absent", []string{"recipediary", "-u", "bob", "-a", ":50051"}, ""},
		{"last wins", []string{"recipediary", "-c", "a.json", "-config", "b.json"}, "b.json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			os.Args = tc.args
			assert.Equal(t, tc.want, ConfigFileFlag())
		})
	}
}
