// Package contextprops builds the property set a deployed application's descriptor is expanded with.
//
// Every environment variable starting with CONTEXT_ is projected, without the prefix,
// into a Properties value. The deployment receives that value explicitly; nothing is
// written to process-global state.
//
// Descriptor values reference properties as ${NAME}. Unknown names are left as written.
package contextprops
