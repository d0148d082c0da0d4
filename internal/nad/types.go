package nad

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// API coordinates of the NetworkAttachmentDefinition CRD.
const (
	Group      = "k8s.cni.cncf.io"
	Version    = "v1"
	APIVersion = Group + "/" + Version
	ResKind    = "NetworkAttachmentDefinition"
	Resource   = "network-attachment-definitions"
)

// GroupVersionResource addresses the CRD on the dynamic client.
var GroupVersionResource = schema.GroupVersionResource{
	Group:    Group,
	Version:  Version,
	Resource: Resource,
}

// NetworkAttachmentDefinition is the manifest shape submitted to the
// cluster. Spec.Config carries the CNI plugin configuration as an
// embedded JSON document, per the multus convention.
type NetworkAttachmentDefinition struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec Spec `json:"spec"`
}

// Spec holds the embedded CNI configuration.
type Spec struct {
	Config string `json:"config"`
}
