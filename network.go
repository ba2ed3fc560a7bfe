package nms

import "context"

// NetworkType classifies a network and determines which dashboard set is
// provisioned for it.
type NetworkType string

const (
	NetworkTypeLTE            NetworkType = "lte"
	NetworkTypeFEG            NetworkType = "feg"
	NetworkTypeCarrierWifi    NetworkType = "carrier_wifi_network"
	NetworkTypeFEGCarrierWifi NetworkType = "feg_carrier_wifi_network"
	NetworkTypeXWFM           NetworkType = "xwfm"
)

// NetworkRegistry looks up the type of a network by ID.
type NetworkRegistry interface {
	NetworkType(ctx context.Context, networkID string) (NetworkType, error)
}
