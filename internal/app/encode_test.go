package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/espgen/internal/compiler"
	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/components/wifi"
	"github.com/specialistvlad/espgen/internal/ctxlog"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const wantDeclare = `esphomelib::WiFiComponent *wifi = App.init_wifi("MyHomeNetwork", "VerySafePassword");`

func compileWiFi(t *testing.T) *compiler.Result {
	t.Helper()

	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	doc := model.Map(model.E("wifi", model.Map(
		model.E("ssid", model.String("MyHomeNetwork")),
		model.E("password", model.String("VerySafePassword")),
		model.E("hostname", model.String("node-1")),
	)))
	res, err := compiler.New(component.NewCatalog(wifi.New()), component.PlatformESP8266).Run(ctx, doc)
	require.NoError(t, err)
	return res
}

func TestEncodeResult_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, encodeResult(&buf, "json", "ESP8266", compileWiFi(t)))

	var rec programRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ESP8266", rec.Platform)
	assert.Equal(t, []string{"ESP8266WiFi"}, rec.LibDeps)
	assert.Equal(t, []identifierRecord{{Name: "wifi", Type: "esphomelib::WiFiComponent", Site: "wifi.id"}}, rec.Identifiers)

	require.Len(t, rec.Statements, 2)
	assert.Equal(t, statementRecord{
		Component:  "wifi",
		Kind:       "declare",
		Identifier: "wifi",
		Type:       "esphomelib::WiFiComponent",
		Code:       wantDeclare,
	}, rec.Statements[0])
	assert.Equal(t, "invoke", rec.Statements[1].Kind)
	assert.Equal(t, []string{"wifi"}, rec.Statements[1].References)
	assert.Equal(t, `wifi->set_hostname("node-1");`, rec.Statements[1].Code)
}

func TestEncodeResult_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, encodeResult(&buf, "yaml", "ESP8266", compileWiFi(t)))
	assert.Contains(t, buf.String(), "lib_deps:\n    - ESP8266WiFi\n")

	var rec programRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rec))
	require.Len(t, rec.Statements, 2)
	assert.Equal(t, wantDeclare, rec.Statements[0].Code)
}

func TestEncodeResult_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, encodeResult(&buf, "table", "ESP8266", compileWiFi(t)))
	out := buf.String()
	assert.Contains(t, out, "COMPONENT")
	assert.Contains(t, out, `App.init_wifi("MyHomeNetwork", "VerySafePassword")`)
	assert.Contains(t, out, `wifi.set_hostname("node-1")`)
}

func TestEncodeResult_CPP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, encodeResult(&buf, "cpp", "ESP8266", compileWiFi(t)))
	assert.Contains(t, buf.String(), wantDeclare+"\n")
}

func TestEncodeResult_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := encodeResult(io.Discard, "xml", "ESP32", compileWiFi(t))
	assert.EqualError(t, err, `encoding program as "xml" failed: unknown output format: "xml"`)
}
