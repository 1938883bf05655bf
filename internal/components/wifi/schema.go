package wifi

import (
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/schema"
	"github.com/specialistvlad/espgen/internal/validate"
)

// Configuration keys.
const (
	keyID       = "id"
	keySSID     = "ssid"
	keyPassword = "password"
	keyBSSID    = "bssid"
	keyChannel  = "channel"
	keyManualIP = "manual_ip"
	keyNetworks = "networks"
	keyAP       = "ap"
	keyHostname = "hostname"
	keyDomain   = "domain"

	keyStaticIP = "static_ip"
	keyGateway  = "gateway"
	keySubnet   = "subnet"
	keyDNS1     = "dns1"
	keyDNS2     = "dns2"
)

// APManualIP fixes the addresses of the access point.
var APManualIP = schema.New(
	schema.Required(keyStaticIP, schema.IPv4),
	schema.Required(keyGateway, schema.IPv4),
	schema.Required(keySubnet, schema.IPv4),
)

// STAManualIP is APManualIP plus optional DNS servers for station mode. The
// two servers form a group but either may be given alone.
var STAManualIP = APManualIP.Extend(
	schema.Inclusive(keyDNS1, "dns", schema.IPv4),
	schema.Inclusive(keyDNS2, "dns", schema.IPv4),
)

var networkBase = schema.New(
	schema.Optional(keySSID, schema.SSID).Describe("Network name."),
	schema.Optional(keyPassword, schema.Password).Describe("WPA password, empty for open networks."),
	schema.Optional(keyBSSID, schema.MACAddress).Describe("Hardware address of the access point to connect to."),
	schema.Optional(keyChannel, schema.Channel),
	schema.Optional(keyManualIP, APManualIP),
)

// APNetwork validates the `ap:` block.
var APNetwork = schema.All(
	networkBase.Extend(schema.Optional(keyManualIP, APManualIP)),
	schema.RequireAtLeastOneOf(keySSID, keyBSSID),
)

// STANetwork validates one entry of `networks:`.
var STANetwork = schema.All(
	networkBase.Extend(schema.Optional(keyManualIP, STAManualIP)),
	schema.RequireAtLeastOneOf(keySSID, keyBSSID),
)

// ConfigSchema validates the whole `wifi:` block.
var ConfigSchema = schema.All(
	schema.New(
		schema.Optional(keyID, schema.Identifier).Describe("Identifier of the WiFi component, generated when omitted."),
		schema.Optional(keySSID, schema.SSID).Describe("Single network name."),
		schema.Optional(keyPassword, schema.Password),
		schema.Optional(keyNetworks, schema.Chain(schema.Prim(validate.EnsureList), schema.ListOf(STANetwork))).
			Describe("Networks to connect to, tried in order."),
		schema.Optional(keyAP, APNetwork).Describe("Access point the node opens itself."),
		schema.Optional(keyHostname, schema.Hostname),
		schema.OptionalDefault(keyDomain, schema.DomainName, model.String(".local")),
		schema.Optional(keyManualIP, schema.Removed("1.7.0",
			"Manual IPs can only be specified in the 'networks:' section of the WiFi configuration")),
	),
	schema.CheckFunc(checkMultiWiFi),
)

// checkMultiWiFi rejects mixing the single network keys with `networks:`.
func checkMultiWiFi(cfg model.Value, path fieldpath.Path) error {
	if pw, ok := cfg.Get(keyPassword); ok && !cfg.Has(keySSID) {
		return diag.NewCrossField(path.Field(keyPassword), pw.Pos(), "cannot have WiFi password without SSID")
	}
	if ssid, ok := cfg.Get(keySSID); ok && cfg.Has(keyNetworks) {
		return diag.NewCrossField(path.Field(keySSID), ssid.Pos(),
			"for multi-wifi mode (with 'networks:'), please specify all networks within the 'networks:' key")
	}
	return nil
}
