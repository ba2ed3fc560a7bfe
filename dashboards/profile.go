package dashboards

import nms "github.com/magma/magma-sub005"

// Profile selects the dashboard set provisioned for an organization. It is
// computed once from the classification of the org's networks and then
// mapped onto a fixed builder list, so the selection logic lives in exactly
// one place.
type Profile int

const (
	// ProfileStandard is the default dashboard set.
	ProfileStandard Profile = iota
	// ProfileXWFM replaces the subscriber dashboards with the XWF-M one.
	ProfileXWFM
	// ProfileCWF augments the standard set with the carrier-wifi dashboards.
	ProfileCWF
)

func (p Profile) String() string {
	switch p {
	case ProfileXWFM:
		return "xwfm"
	case ProfileCWF:
		return "cwf"
	default:
		return "standard"
	}
}

// ProfileFor classifies a set of network types. Any XWFM network wins over
// everything else; otherwise any carrier-wifi network selects the augmented
// set.
func ProfileFor(types []nms.NetworkType) Profile {
	profile := ProfileStandard
	for _, t := range types {
		switch t {
		case nms.NetworkTypeXWFM:
			return ProfileXWFM
		case nms.NetworkTypeCarrierWifi, nms.NetworkTypeFEGCarrierWifi:
			profile = ProfileCWF
		}
	}
	return profile
}

// Builders returns the dashboard builders for the profile, in post order.
// Network, Gateway and Internal are always built; the rest depend on the
// profile.
func (p Profile) Builders() []Builder {
	base := []Builder{Network, Gateway, Internal}
	switch p {
	case ProfileXWFM:
		return append(base, XWFM)
	case ProfileCWF:
		return append(base, Subscriber, CWFNetwork, CWFGateway, CWFSubscriber, CWFAccessPoint, Analytics)
	default:
		return append(base, Subscriber)
	}
}
