package wifi

import (
	"context"
	"fmt"

	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/ctxlog"
	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/schema"
)

// Name is the document key of the component.
const Name = "wifi"

var esphomelib = expr.Namespace("esphomelib")

// Runtime types used by the generated code.
var (
	WiFiComponentType = esphomelib.Class("WiFiComponent")
	WiFiApType        = esphomelib.Class("WiFiAp")
	ManualIPType      = esphomelib.Class("ManualIP")
)

var app = expr.Symbol{Name: "App"}

// Component is the wifi component.
type Component struct{}

var _ component.Component = (*Component)(nil)

// New creates the component.
func New() *Component {
	return &Component{}
}

func (*Component) Name() string             { return Name }
func (*Component) Schema() schema.Validator { return ConfigSchema }

// LibDeps requires the Arduino WiFi library on ESP8266 only.
func (*Component) LibDeps(p component.Platform) string {
	if p == component.PlatformESP8266 {
		return "ESP8266WiFi"
	}
	return ""
}

// ToCode declares the WiFiComponent and configures it.
func (*Component) ToCode(ctx context.Context, cfg model.Value, b component.Builder) error {
	logger := ctxlog.FromContext(ctx)

	name := cfg.GetString(keyID, "")
	if name == "" {
		name = b.GenerateName(Name)
	}
	id, err := b.Declare(name, WiFiComponentType, Name+"."+keyID)
	if err != nil {
		return err
	}

	// With a top-level ssid the single network overload is used; otherwise
	// networks are added one by one below.
	var ctor *expr.Call
	if ssid, ok := cfg.Get(keySSID); ok {
		s, _ := ssid.AsString()
		ctor = expr.BuildCall(app, "init_wifi", expr.String(s), expr.String(cfg.GetString(keyPassword, "")))
	} else {
		ctor = expr.BuildCall(app, "init_wifi")
	}
	b.DeclareAndBind(id, ctor)

	networks, _ := cfg.Get(keyNetworks)
	for i, network := range networks.Items() {
		ap, err := wifiNetwork(network)
		if err != nil {
			return fmt.Errorf("networks[%d]: %w", i, err)
		}
		b.Invoke(id, "add_sta", ap)
	}

	if ap, ok := cfg.Get(keyAP); ok {
		network, err := wifiNetwork(ap)
		if err != nil {
			return fmt.Errorf("ap: %w", err)
		}
		b.Invoke(id, "set_ap", network)
	}

	if hostname, ok := cfg.Get(keyHostname); ok {
		h, _ := hostname.AsString()
		b.Invoke(id, "set_hostname", expr.String(h))
	}

	logger.Debug("WiFi configured.", "id", id.Name, "networks", networks.Len(), "ap", cfg.Has(keyAP))
	return nil
}

// wifiNetwork builds the WiFiAp initializer for a validated network entry.
// Members follow the runtime struct layout; absent values are filled with
// the runtime's "unset" representation.
func wifiNetwork(cfg model.Value) (*expr.StructInit, error) {
	bssidValue, hasBSSID := cfg.Get(keyBSSID)
	bssid, err := expr.MACHex(bssidValue, hasBSSID)
	if err != nil {
		return nil, fmt.Errorf("bssid: %w", err)
	}
	channel, err := expr.Get(cfg, keyChannel, expr.Int(-1))
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}
	manualIPValue, _ := cfg.Get(keyManualIP)
	manualIP, err := manualIP(manualIPValue)
	if err != nil {
		return nil, fmt.Errorf("manual_ip: %w", err)
	}
	return expr.BuildStruct(WiFiApType,
		expr.F("ssid", expr.String(cfg.GetString(keySSID, ""))),
		expr.F("password", expr.String(cfg.GetString(keyPassword, ""))),
		expr.F("bssid", bssid),
		expr.F("channel", channel),
		expr.F("manual_ip", manualIP),
	), nil
}

// manualIP builds the ManualIP initializer. Without a manual_ip block every
// address is the zero address, which the runtime reads as DHCP.
func manualIP(cfg model.Value) (*expr.StructInit, error) {
	keys := []string{keyStaticIP, keyGateway, keySubnet, keyDNS1, keyDNS2}
	fields := make([]expr.FieldValue, 0, len(keys))
	for _, key := range keys {
		v, ok := cfg.Get(key)
		ip, err := expr.IPAddress(v, ok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		fields = append(fields, expr.F(key, ip))
	}
	return expr.BuildStruct(ManualIPType, fields...), nil
}
