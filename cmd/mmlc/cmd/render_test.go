// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangee/mathml/cmd/mmlc/cmd"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "mmlc.yaml")
	if err := os.WriteFile(cfgFile, []byte("display: inline\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "compact",
			args: []string{"render", "x^2", "f(x)"},
			want: "<msup><mi>x</mi><mn>2</mn></msup>\n<mrow><mi>f</mi><mo>\u2061</mo><mfenced><mi>x</mi></mfenced></mrow>\n",
		},
		{
			name: "display flag",
			args: []string{"render", "--display", "block", "a"},
			want: `<math display="block" xmlns="http://www.w3.org/1998/Math/MathML"><mi>a</mi></math>` + "\n",
		},
		{
			name: "config file",
			args: []string{"render", "--config", cfgFile, "a"},
			want: `<math display="inline" xmlns="http://www.w3.org/1998/Math/MathML"><mi>a</mi></math>` + "\n",
		},
		{
			name: "flag wins over config file",
			args: []string{"render", "--config", cfgFile, "--display", "", "a"},
			want: "<mi>a</mi>\n",
		},
		{
			name: "indent",
			args: []string{"render", "--indent", " ", "a+1"},
			want: "<mrow>\n <mi>a</mi>\n <mo>+</mo>\n <mn>1</mn>\n</mrow>\n",
		},
		{
			name: "json",
			args: []string{"render", "--format", "json", "1"},
			want: `{"name":"mn","text":"1"}` + "\n",
		},
		{
			name:    "parse error",
			args:    []string{"render", "a +"},
			wantErr: true,
		},
		{
			name:    "invalid display",
			args:    []string{"render", "--display", "wide", "a"},
			wantErr: true,
		},
		{
			name:    "missing formula",
			args:    []string{"render"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		test := tt

		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer

			root := cmd.NewRootCmd()
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs(test.args)

			err := root.Execute()
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error, but did not get one")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if out.String() != test.want {
				t.Errorf("Test '%s' failed. Wanted %q, got %q", test.name, test.want, out.String())
			}
		})
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer

	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "mmlc v"+cmd.Version) {
		t.Errorf("unexpected version output %q", out.String())
	}
}
