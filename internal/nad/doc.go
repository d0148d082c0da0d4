// Package nad builds NetworkAttachmentDefinition manifests for VLAN
// attachments.
//
// Building is a pure function of (VLAN id, network template): the same
// inputs always produce the same manifest, so repeated runs over a
// range are idempotent down to the byte level.
package nad
