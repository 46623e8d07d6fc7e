// Package partner contains the DeliveryPartner aggregate and the Vehicle
// value object.
//
// A DeliveryPartner is a courier registered on the platform. The aggregate
// owns the registry state (name, credential hash, vehicle), the dispatch
// state (verified, available, last reported location) and the running
// delivery statistics (completed deliveries, average customer rating).
//
// Credential handling: the aggregate stores only an opaque bcrypt hash.
// Hashing and verification of plaintext credentials happen in the use case
// layer; query handlers strip the hash before results leave the core.
package partner
