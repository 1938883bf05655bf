// Package wifi implements the `wifi:` component.
//
// The component accepts either a single network (`ssid` and `password` at
// the top level) or a list of station networks under `networks:`, plus an
// optional access point and hostname. It declares one WiFiComponent
// identifier and configures it in a fixed order: construction, station
// networks, access point, hostname.
package wifi
