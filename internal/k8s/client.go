// Package k8s provides the cluster client for network attachment
// resources.
//
// The client exposes the three operations the provisioning engine
// depends on: existence check, idempotent upsert, and delete. All
// other cluster concerns (auth, discovery) stay behind the kubeconfig.
// Transient API failures are retried with exponential backoff; client
// errors such as bad requests or missing resources are not.
package k8s

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/vlanadm/vlanadm/internal/nad"
	"github.com/vlanadm/vlanadm/internal/util/retry"
)

// Interface is the resource client capability consumed by the
// provisioning engine.
type Interface interface {
	// Exists reports whether the named resource is present. A missing
	// resource is a normal false, not an error; only transport or auth
	// failures are errors.
	Exists(ctx context.Context, name, namespace string) (bool, error)

	// Upsert creates the resource or updates it in place when it
	// already exists. Repeating an identical upsert is a no-op beyond
	// the first.
	Upsert(ctx context.Context, manifest *nad.NetworkAttachmentDefinition) error

	// Delete removes the named resource.
	Delete(ctx context.Context, name, namespace string) error
}

// Client implements Interface over the dynamic client.
type Client struct {
	dynamic   dynamic.Interface
	retryOpts []retry.Option
}

var _ Interface = (*Client)(nil)

// NewClient builds a client from a kubeconfig file. An empty path
// falls back to in-cluster configuration.
func NewClient(kubeconfigPath string) (*Client, error) {
	restCfg, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Client{dynamic: dynamicClient}, nil
}

// NewClientForDynamic wraps an existing dynamic client. Used by tests
// with the client-go fake; retry options tighten the backoff there.
func NewClientForDynamic(d dynamic.Interface, retryOpts ...retry.Option) *Client {
	return &Client{dynamic: d, retryOpts: retryOpts}
}

// Exists implements Interface.
func (c *Client) Exists(ctx context.Context, name, namespace string) (bool, error) {
	var found bool
	err := retry.Do(ctx, func() error {
		_, err := c.dynamic.Resource(nad.GroupVersionResource).Namespace(namespace).
			Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			if apierrors.IsNotFound(err) {
				found = false
				return nil
			}
			return classify(err)
		}
		found = true
		return nil
	}, c.retryOpts...)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s/%s: %w", namespace, name, err)
	}
	return found, nil
}

// Upsert implements Interface by creating the resource and falling
// back to an update when it already exists.
func (c *Client) Upsert(ctx context.Context, manifest *nad.NetworkAttachmentDefinition) error {
	obj, err := nad.ToUnstructured(manifest)
	if err != nil {
		return err
	}

	res := c.dynamic.Resource(nad.GroupVersionResource).Namespace(manifest.Namespace)

	return retry.Do(ctx, func() error {
		_, err := res.Create(ctx, obj.DeepCopy(), metav1.CreateOptions{})
		if err == nil {
			return nil
		}
		if !apierrors.IsAlreadyExists(err) {
			return fmt.Errorf("failed to create %s/%s: %w", manifest.Namespace, manifest.Name, classify(err))
		}

		// Update needs the live resourceVersion.
		existing, err := res.Get(ctx, manifest.Name, metav1.GetOptions{})
		if err != nil {
			return fmt.Errorf("failed to fetch existing %s/%s: %w", manifest.Namespace, manifest.Name, classify(err))
		}
		updated := obj.DeepCopy()
		updated.SetResourceVersion(existing.GetResourceVersion())

		if _, err := res.Update(ctx, updated, metav1.UpdateOptions{}); err != nil {
			return fmt.Errorf("failed to update %s/%s: %w", manifest.Namespace, manifest.Name, classify(err))
		}
		return nil
	}, c.retryOpts...)
}

// Delete implements Interface.
func (c *Client) Delete(ctx context.Context, name, namespace string) error {
	return retry.Do(ctx, func() error {
		err := c.dynamic.Resource(nad.GroupVersionResource).Namespace(namespace).
			Delete(ctx, name, metav1.DeleteOptions{})
		if err != nil {
			return fmt.Errorf("failed to delete %s/%s: %w", namespace, name, classify(err))
		}
		return nil
	}, c.retryOpts...)
}

// classify marks API errors that retrying cannot fix as permanent.
// Conflicts stay retryable so a lost upsert race re-reads the live
// resourceVersion on the next attempt.
func classify(err error) error {
	if apierrors.IsNotFound(err) ||
		apierrors.IsForbidden(err) ||
		apierrors.IsUnauthorized(err) ||
		apierrors.IsInvalid(err) ||
		apierrors.IsBadRequest(err) {
		return retry.Permanent(err)
	}
	return err
}
