//go:build !lambda

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_EmbeddedCatalog(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 12 memoria, 4 orders\n", out)
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memoria.json")
	rec := func(id, name, desc string) string {
		return `{"id":` + id + `,"name":"` + name + `","link":"","kind":"支援","element":"光",` +
			`"status":[[1,1,1,1],[1,1,1,1],[1,1,1,1],[1,1,1,1],[1,1,1,1]],` +
			`"skill":{"name":"s","description":"` + desc + `"},` +
			`"support":{"name":"援:ATKアップⅢ","description":"支援/妨害時、中確率で味方のATKを中アップさせる。"}}`
	}
	doc := "[" + rec("1", "first", "味方全体のATKを中アップさせる。") + "," +
		rec("2", "second", "味方全体のXYZを中アップさせる。") + "," +
		rec("3", "third", "味方全体のATKを微アップさせる。") + "]"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := runCLI(t, "check", "--memoria", path)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "2 memoria failed to parse")
	assert.Contains(t, msg, `"entityName": "second"`)
	assert.Contains(t, msg, `"target": "微アップ"`)
	assert.NotContains(t, msg, `"entityName": "first"`)
}

func TestCheck_ShapeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memoria.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

	_, err := runCLI(t, "check", "--memoria", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level is not an array")
}

func TestCheck_InvalidLogLevelFlag(t *testing.T) {
	_, err := runCLI(t, "check", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestDump_JSON(t *testing.T) {
	out, err := runCLI(t, "dump")
	require.NoError(t, err)

	var doc struct {
		Memoria []struct {
			ID     int `json:"id"`
			Skills struct {
				Skill struct {
					Effects []struct {
						Type   string `json:"type"`
						Amount string `json:"amount"`
						Status string `json:"status"`
					} `json:"effects"`
				} `json:"skill"`
			} `json:"skills"`
		} `json:"memoria"`
		Orders []json.RawMessage `json:"orders"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Memoria, 12)
	assert.Len(t, doc.Orders, 4)

	first := doc.Memoria[0].Skills.Skill.Effects
	require.Len(t, first, 1)
	assert.Equal(t, "StatusChange", first[0].Type)
	assert.Equal(t, "medium", first[0].Amount)
	assert.Equal(t, "ATK", first[0].Status)
	assert.Contains(t, out, "敵1体に通常特大ダメージを与え、自身のATKを中アップさせる。")
}

func TestDump_YAML(t *testing.T) {
	out, err := runCLI(t, "dump", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc["memoria"], 12)
	assert.Equal(t, "燃え盛る一撃", doc["memoria"][0]["name"])
	assert.Contains(t, out, "amount: extra-large")
}

func TestDump_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "dump", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestSearch(t *testing.T) {
	out, err := runCLI(t, "search", "--element", "Water", "--json")
	require.NoError(t, err)

	var ms []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &ms))
	var ids []int
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{2, 7, 10}, ids)

	out, err = runCLI(t, "search", "--kind", "回復")
	require.NoError(t, err)
	assert.Contains(t, out, "癒しの泉")
	assert.Contains(t, out, "support: [Recovery/small] RecoveryUp medium")
	assert.True(t, strings.HasSuffix(out, "2 memoria\n"), out)

	_, err = runCLI(t, "search", "--element", "Earth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter element")
}
