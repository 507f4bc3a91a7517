// Package localstore persists device-authored articles and the device
// identity on the durable key-value boundary.
//
// The article collection is one JSON document under a device-namespaced
// key; every mutation re-serialises and rewrites the whole collection.
// Fine at the scale of one device's authored content, deliberately not
// optimised beyond that.
package localstore
