package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role is the closed set of party roles the fulfillment core recognises.
// Identity and role derivation happen outside this module; operations receive
// the caller's role as data and check it through HasCapability rather than
// scattering string comparisons.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer is a customer placing orders and owning a personal stock ledger.
	RoleBuyer

	// RoleDepot is a warehouse account owning a catalog ledger.
	RoleDepot

	// RoleCarrier is a party assigned to move shipments.
	RoleCarrier

	// RoleAdmin is an operator with every capability.
	RoleAdmin
)

// Capability names a single permission an operation may demand.
type Capability int

const (
	// CapabilityManageCatalog allows linking products, merging stock, and
	// editing alternate barcodes.
	CapabilityManageCatalog Capability = iota + 1

	// CapabilityManageOrders allows driving the order lifecycle beyond the
	// buyer's own pending edits.
	CapabilityManageOrders

	// CapabilityManageShipments allows creating shipments and changing their state.
	CapabilityManageShipments

	// CapabilityConfirmAnyReceipt allows confirming a delivery receipt on
	// behalf of a buyer.
	CapabilityConfirmAnyReceipt
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleDepot:   "depot",
		RoleCarrier: "carrier",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses a role name as received from the identity layer.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the role name.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the role is one of the known non-unknown values.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// HasCapability reports whether the role carries the capability. It is a pure
// function over the closed role set; operations call it once at the top
// instead of comparing role names inline.
func (r Role) HasCapability(capability Capability) bool {
	if r == RoleAdmin {
		return true
	}

	switch capability {
	case CapabilityManageCatalog:
		return r == RoleDepot
	case CapabilityManageOrders:
		return r == RoleDepot
	case CapabilityManageShipments:
		return r == RoleDepot || r == RoleCarrier
	case CapabilityConfirmAnyReceipt:
		return r == RoleDepot
	default:
		return false
	}
}

// Caller is the opaque identity of the party invoking an operation,
// as derived by the external identity collaborator.
type Caller struct {
	id   UUID
	role Role
}

// NewCaller creates a validated caller from an id and role.
func NewCaller(id UUID, role Role) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role}, nil
}

// ID returns the caller's party identifier.
func (c Caller) ID() UUID {
	return c.id
}

// Role returns the caller's role.
func (c Caller) Role() Role {
	return c.role
}

// Validate checks the caller carries a constructed id and a known role.
func (c Caller) Validate() error {
	if err := c.id.Validate(); err != nil {
		return err
	}
	return c.role.Validate()
}
