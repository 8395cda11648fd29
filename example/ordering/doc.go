// Package ordering is an example domain showing how application code builds
// on the basetypes library: Order is an entity, Address, Money and OrderLine
// are value objects, and OrderStatus is an enumeration with a value alias.
package ordering
