// Package shipment implements the shipment tracker aggregate: one shipment
// per order, carrying carrier assignment, the last reported location, and a
// pending/in_transit/delivered/failed lifecycle mirrored back onto the order
// by the completing operation.
package shipment
