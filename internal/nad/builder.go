package nad

import (
	"encoding/json"
	"strconv"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/util/labels"
)

// VlanToken is the placeholder in description templates that is
// replaced with the decimal VLAN id.
const VlanToken = "{vlan}"

// cniVersion is pinned; the payload shape below is written against it.
const cniVersion = "0.3.1"

// Annotation keys recorded on generated resources.
const (
	// AnnotationResourceName advertises the bridge capacity resource
	// consumed by bridge attachments.
	AnnotationResourceName = "k8s.v1.cni.cncf.io/resourceName"

	// AnnotationDescription carries the rendered description template.
	AnnotationDescription = "description"

	// AnnotationNetworkID and AnnotationNetworkName identify localnet
	// attachments by VLAN id and resource name.
	AnnotationNetworkID   = "network.vlanadm.io/id"
	AnnotationNetworkName = "network.vlanadm.io/name"
)

// bridgeResourcePrefix derives the capacity resource name from the
// bridge device, e.g. bridge.network.kubevirt.io/br0.
const bridgeResourcePrefix = "bridge.network.kubevirt.io/"

// bridgeConfig is the cnv-bridge CNI payload. macspoofchk and
// preserveDefaultVlan are always emitted, even when false.
type bridgeConfig struct {
	CNIVersion          string `json:"cniVersion"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Bridge              string `json:"bridge"`
	Vlan                int    `json:"vlan"`
	MacSpoofChk         bool   `json:"macspoofchk"`
	PreserveDefaultVlan bool   `json:"preserveDefaultVlan"`
}

// localnetConfig is the ovn-k8s-cni-overlay CNI payload. MTU is
// omitted entirely when unset; an explicit default would be a
// different wire artifact than an absent field.
type localnetConfig struct {
	CNIVersion       string `json:"cniVersion"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Topology         string `json:"topology"`
	NetAttachDefName string `json:"netAttachDefName"`
	VlanID           int    `json:"vlanID"`
	MTU              int    `json:"mtu,omitempty"`
}

// Build renders the manifest for one VLAN id. It is total for any id
// in the 802.1Q space: an invalid network template must be rejected at
// job validation time, not here.
func Build(vlanID int, netw config.Network) NetworkAttachmentDefinition {
	name := ResourceName(netw.Prefix, vlanID)

	manifest := NetworkAttachmentDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       ResKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   netw.Namespace,
			Labels:      labels.Merge(netw.Labels, nil),
			Annotations: buildAnnotations(vlanID, name, netw),
		},
	}

	switch netw.Kind {
	case config.KindLocalnet:
		manifest.Spec.Config = marshalConfig(localnetConfig{
			CNIVersion:       cniVersion,
			Name:             name,
			Type:             "ovn-k8s-cni-overlay",
			Topology:         "localnet",
			NetAttachDefName: netw.Namespace + "/" + name,
			VlanID:           vlanID,
			MTU:              netw.MTU,
		})
	default:
		manifest.Spec.Config = marshalConfig(bridgeConfig{
			CNIVersion:          cniVersion,
			Name:                name,
			Type:                "cnv-bridge",
			Bridge:              netw.Bridge,
			Vlan:                vlanID,
			MacSpoofChk:         macSpoofCheck(netw),
			PreserveDefaultVlan: false,
		})
	}

	return manifest
}

// ResourceName forms the resource name for a VLAN id: prefix plus the
// decimal id, no padding.
func ResourceName(prefix string, vlanID int) string {
	return prefix + strconv.Itoa(vlanID)
}

// RenderDescription substitutes the VLAN token in a description
// template with the decimal id.
func RenderDescription(template string, vlanID int) string {
	return strings.ReplaceAll(template, VlanToken, strconv.Itoa(vlanID))
}

func buildAnnotations(vlanID int, name string, netw config.Network) map[string]string {
	annotations := make(map[string]string)

	switch netw.Kind {
	case config.KindLocalnet:
		annotations[AnnotationNetworkID] = strconv.Itoa(vlanID)
		annotations[AnnotationNetworkName] = name
	default:
		annotations[AnnotationResourceName] = bridgeResourcePrefix + netw.Bridge
	}

	if netw.Description != "" {
		annotations[AnnotationDescription] = RenderDescription(netw.Description, vlanID)
	}
	return annotations
}

// macSpoofCheck resolves the optional flag; unset means enabled.
func macSpoofCheck(netw config.Network) bool {
	if netw.MacSpoofCheck == nil {
		return true
	}
	return *netw.MacSpoofCheck
}

// marshalConfig serializes a CNI payload struct. Marshaling a plain
// struct of strings, ints and bools cannot fail.
func marshalConfig(cfg any) string {
	data, _ := json.Marshal(cfg)
	return string(data)
}
