package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"decint/internal/calc"
	"decint/internal/observ"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var out, errOut bytes.Buffer
	// an explicit settings file keeps a stray decint.toml above the test dir out
	cfg := filepath.Join(t.TempDir(), "decint.toml")
	if err := os.WriteFile(cfg, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	args = append([]string{"--config", cfg}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  []string
	}{
		{"sum", []string{"eval", "+", "1", "2"}, 0, "3\n", nil},
		{"quoted", []string{"eval", "/ * 42 1764 1764"}, 0, "42\n", nil},
		{"negative literal", []string{"eval", "neg -5"}, 0, "5\n", nil},
		{"full width", []string{"eval", "＊ ６ ７"}, 0, "42\n", nil},
		{"division error", []string{"eval", "/ 1 0"}, 1, "", []string{"<arg>:1:1: error: division requires", "    / 1 0\n    ^\n"}},
		{"bad literal", []string{"eval", "+ 1 2x"}, 1, "", []string{"<arg>:1:6: error: invalid numeric format", "         ^"}},
		{"empty", []string{"eval", " "}, 1, "", []string{"<arg>:1: error: empty expression"}},
		{"no args", []string{"eval"}, 1, "", []string{"decint: requires at least 1 arg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			if res.code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr %q)", res.code, tt.wantCode, res.stderr)
			}
			if res.stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.wantOut)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(res.stderr, want) {
					t.Errorf("stderr = %q, want it to contain %q", res.stderr, want)
				}
			}
		})
	}
}

func TestEval_JSON(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "eval", "* 6 7")
	if res.code != 0 {
		t.Fatalf("exit code %d: %s", res.code, res.stderr)
	}
	var rec calc.Record
	if err := json.Unmarshal([]byte(res.stdout), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Line != 1 || rec.Expr != "* 6 7" || rec.Value == nil || rec.Value.String() != "42" {
		t.Errorf("record = %+v", rec)
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	src := "# products\n* 6 7\n\n/ 1 0\n+ 1 2\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("text", func(t *testing.T) {
		res := runCLI(t, "", "batch", "-j", "2", path)
		if res.code != 1 {
			t.Fatalf("exit code = %d, want 1", res.code)
		}
		if res.stdout != "42\n3\n" {
			t.Errorf("stdout = %q", res.stdout)
		}
		for _, want := range []string{path + ":4:1: error:", "3 expressions evaluated, 1 failed"} {
			if !strings.Contains(res.stderr, want) {
				t.Errorf("stderr = %q, want %q", res.stderr, want)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "--format=json", "batch", path)
		var recs []calc.Record
		if err := json.Unmarshal([]byte(res.stdout), &recs); err != nil {
			t.Fatalf("json.Unmarshal(%q): %v", res.stdout, err)
		}
		if len(recs) != 3 || recs[0].Line != 2 || recs[1].Error == "" || recs[2].Value.String() != "3" {
			t.Errorf("records = %+v", recs)
		}
	})

	t.Run("msgpack stdin", func(t *testing.T) {
		res := runCLI(t, "* 6 7\n- 1 2\n", "--format", "msgpack", "batch", "-")
		if res.code != 0 {
			t.Fatalf("exit code %d: %s", res.code, res.stderr)
		}
		dec := msgpack.NewDecoder(strings.NewReader(res.stdout))
		var got []string
		for range 2 {
			var rec calc.Record
			if err := dec.Decode(&rec); err != nil {
				t.Fatal(err)
			}
			got = append(got, rec.Value.String())
		}
		if strings.Join(got, ",") != "42,-1" {
			t.Errorf("values = %v", got)
		}
	})

	t.Run("progress ui", func(t *testing.T) {
		res := runCLI(t, "", "batch", "--ui", "on", path)
		if res.code != 1 || res.stdout != "42\n3\n" {
			t.Errorf("result = %+v", res)
		}
		if !strings.Contains(res.stderr, "3/3, 1 failed") {
			t.Errorf("stderr has no progress view: %q", res.stderr)
		}
	})

	t.Run("bad ui mode", func(t *testing.T) {
		if res := runCLI(t, "", "batch", "--ui", "fancy", path); res.code != 1 || !strings.Contains(res.stderr, "invalid --ui value") {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		res := runCLI(t, "", "batch", filepath.Join(t.TempDir(), "nope.txt"))
		if res.code != 1 || !strings.Contains(res.stderr, "decint: open") {
			t.Errorf("result = %+v", res)
		}
	})
}

func TestCmp(t *testing.T) {
	if res := runCLI(t, "", "cmp", "1999", "2000"); res.stdout != "<\n" {
		t.Errorf("cmp 1999 2000 = %+v", res)
	}
	if res := runCLI(t, "", "cmp", "--", "-0", "0"); res.stdout != "=\n" {
		t.Errorf("cmp -0 0 = %+v", res)
	}

	res := runCLI(t, "", "cmp", "1", "12-3")
	if res.code != 1 || !strings.Contains(res.stderr, "<arg>:2:3: error:") {
		t.Errorf("cmp 1 12-3 = %+v", res)
	}

	res = runCLI(t, "", "--format", "json", "cmp", "5", "3")
	var payload cmpPayload
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Ordering != ">" || payload.Cmp != 1 || payload.A.String() != "5" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestBench(t *testing.T) {
	res := runCLI(t, "", "bench", "--digits", "4,12", "--runs", "3")
	if res.code != 0 {
		t.Fatalf("exit code %d: %s", res.code, res.stderr)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), res.stdout)
	}
	for i, prefix := range []string{"mul/4", "div/4", "mul/12", "div/12"} {
		if !strings.HasPrefix(lines[i], prefix) || !strings.Contains(lines[i], "n=3") {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}

	res = runCLI(t, "", "--format", "msgpack", "bench", "--digits", "8", "--runs", "2")
	dec := msgpack.NewDecoder(strings.NewReader(res.stdout))
	dec.SetCustomStructTag("json")
	var sums []observ.Summary
	if err := dec.Decode(&sums); err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 || sums[0].Name != "mul/8" || sums[1].N != 2 {
		t.Errorf("summaries = %+v", sums)
	}

	memPath := filepath.Join(t.TempDir(), "mem.pprof")
	if res := runCLI(t, "", "bench", "--digits", "4", "--runs", "1", "--mem-profile", memPath); res.code != 0 {
		t.Errorf("bench --mem-profile = %+v", res)
	}
	if info, err := os.Stat(memPath); err != nil || info.Size() == 0 {
		t.Errorf("heap profile not written: %v", err)
	}

	if res := runCLI(t, "", "bench", "--runs", "0"); res.code != 1 {
		t.Errorf("bench --runs 0 exit code = %d", res.code)
	}
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	if res.code != 0 || !strings.HasPrefix(res.stdout, "decint ") {
		t.Errorf("version = %+v", res)
	}
	res = runCLI(t, "", "--format", "json", "version")
	if !strings.Contains(res.stdout, `"version":`) {
		t.Errorf("version json = %q", res.stdout)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "decint.toml")
	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"json\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, "eval", "+ 2 2"}, strings.NewReader(""), &out, &errOut)
	if code != 0 || !strings.Contains(out.String(), `"value": "4"`) {
		t.Errorf("config format = %d %q %q", code, out.String(), errOut.String())
	}

	out.Reset()
	code = run(context.Background(), []string{"--config", cfg, "--format", "text", "eval", "+ 2 2"}, strings.NewReader(""), &out, &errOut)
	if code != 0 || out.String() != "4\n" {
		t.Errorf("flag override = %d %q", code, out.String())
	}

	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"yaml\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	errOut.Reset()
	code = run(context.Background(), []string{"--config", cfg, "eval", "1"}, strings.NewReader(""), &out, &errOut)
	if code != 1 || !strings.Contains(errOut.String(), cfg) {
		t.Errorf("bad config = %d %q", code, errOut.String())
	}
}

func TestTracing(t *testing.T) {
	t.Run("stream to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trace.ndjson")
		res := runCLI(t, "", "--trace", path, "--trace-level", "debug", "eval", "* 6 + 3 4")
		if res.code != 0 {
			t.Fatalf("exit code %d: %s", res.code, res.stderr)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{`"scope":"command"`, `"scope":"expr"`, `"name":"+"`, `"name":"*"`} {
			if !bytes.Contains(data, []byte(want)) {
				t.Errorf("trace missing %s:\n%s", want, data)
			}
		}
	})

	t.Run("error level dumps on failure", func(t *testing.T) {
		res := runCLI(t, "", "--trace-level", "error", "eval", "/ 1 0")
		if !strings.Contains(res.stderr, "trace (most recent events):") || !strings.Contains(res.stderr, "/ 1 0") {
			t.Errorf("stderr = %q", res.stderr)
		}
		res = runCLI(t, "", "--trace-level", "error", "eval", "/ 4 2")
		if strings.Contains(res.stderr, "trace") {
			t.Errorf("successful run dumped trace: %q", res.stderr)
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if res := runCLI(t, "", "--trace-level", "loud", "eval", "1"); res.code != 1 {
			t.Errorf("exit code = %d, want 1", res.code)
		}
	})
}

func TestTimingsAndColor(t *testing.T) {
	res := runCLI(t, "", "--timings", "eval", "+ 1 1")
	if !strings.Contains(res.stderr, "timings:") || !strings.Contains(res.stderr, "eval") {
		t.Errorf("stderr = %q", res.stderr)
	}
	res = runCLI(t, "", "--color", "on", "eval", "/ 1 0")
	if !strings.Contains(res.stderr, "\x1b[") {
		t.Errorf("colored stderr = %q", res.stderr)
	}
	res = runCLI(t, "", "--color", "purple", "eval", "1")
	if res.code != 1 || !strings.Contains(res.stderr, "invalid color mode") {
		t.Errorf("bad color = %+v", res)
	}
}
