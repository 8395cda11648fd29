package basetypes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

type shipmentStatus struct {
	basetypes.Enumeration
}

var (
	statusPending          = shipmentStatus{basetypes.NewEnumeration(1, "Pending")}
	statusPendingDuplicate = shipmentStatus{basetypes.NewEnumeration(1, "PendingDuplicate")}
	statusShipped          = shipmentStatus{basetypes.NewEnumeration(2, "Shipped")}
	statusDelivered        = shipmentStatus{basetypes.NewEnumeration(3, "Delivered")}
)

func (shipmentStatus) Declare() []shipmentStatus {
	return []shipmentStatus{statusPending, statusPendingDuplicate, statusShipped, statusDelivered}
}

type paymentStatus struct {
	basetypes.Enumeration
}

var (
	paymentOpen    = paymentStatus{basetypes.NewEnumeration(1, "Open")}
	paymentSettled = paymentStatus{basetypes.NewEnumeration(2, "Settled")}
)

func (paymentStatus) Declare() []paymentStatus {
	return []paymentStatus{paymentOpen, paymentSettled}
}

// registryProbe is only touched by the concurrent first-access test, so its
// member set is guaranteed to be undiscovered when that test starts.
type registryProbe struct {
	basetypes.Enumeration
}

var (
	probeOne   = registryProbe{basetypes.NewEnumeration(1, "One")}
	probeTwo   = registryProbe{basetypes.NewEnumeration(2, "Two")}
	probeThree = registryProbe{basetypes.NewEnumeration(3, "Three")}
)

func (registryProbe) Declare() []registryProbe {
	return []registryProbe{probeOne, probeTwo, probeThree}
}

func Test_Enumeration_EqualityIsDefinedByValueOnly(t *testing.T) {
	assert.True(t, statusPending.Equal(statusPendingDuplicate.Enumeration),
		"members sharing a value are equal despite different display names")
	assert.False(t, statusPending.Equal(statusShipped.Enumeration))
}

func Test_Enumeration_ComparisonIsDefinedByValueOnly(t *testing.T) {
	assert.Equal(t, 0, statusPending.Compare(statusPendingDuplicate.Enumeration))
	assert.Equal(t, -1, statusPending.Compare(statusShipped.Enumeration))
	assert.Equal(t, 1, statusDelivered.Compare(statusShipped.Enumeration))
}

func Test_Enumeration_StringReturnsDisplayName(t *testing.T) {
	assert.Equal(t, "Shipped", statusShipped.String())
}

func Test_Members_ReturnsAllMembersInDeclarationOrder(t *testing.T) {
	members := basetypes.Members[shipmentStatus]()

	require.Len(t, members, 4)
	assert.Equal(t, []shipmentStatus{statusPending, statusPendingDuplicate, statusShipped, statusDelivered}, members)
}

func Test_Members_ReturnsACopyThatDoesNotLeakIntoTheCache(t *testing.T) {
	mutated := basetypes.Members[shipmentStatus]()
	mutated[0] = statusDelivered

	assert.Equal(t, statusPending, basetypes.Members[shipmentStatus]()[0])
}

func Test_Members_KeepsDistinctTypesApart(t *testing.T) {
	assert.Len(t, basetypes.Members[shipmentStatus](), 4)
	assert.Len(t, basetypes.Members[paymentStatus](), 2)
}

func Test_MemberByValue(t *testing.T) {
	t.Run("matching_value_returns_the_member", func(t *testing.T) {
		member, err := basetypes.MemberByValue[shipmentStatus](2)

		require.NoError(t, err)
		assert.Equal(t, statusShipped, member)
	})

	t.Run("duplicate_values_resolve_to_the_first_declared_member", func(t *testing.T) {
		member, err := basetypes.MemberByValue[shipmentStatus](1)

		require.NoError(t, err)
		assert.Equal(t, "Pending", member.DisplayName())
	})

	t.Run("unknown_value_fails_with_no_such_member", func(t *testing.T) {
		member, err := basetypes.MemberByValue[shipmentStatus](99)

		require.ErrorIs(t, err, basetypes.ErrNoSuchMember)
		assert.Zero(t, member)
	})
}

func Test_MemberByDisplayName(t *testing.T) {
	t.Run("matching_display_name_returns_the_member", func(t *testing.T) {
		member, err := basetypes.MemberByDisplayName[shipmentStatus]("Delivered")

		require.NoError(t, err)
		assert.Equal(t, statusDelivered, member)
	})

	t.Run("value_aliases_are_reachable_through_their_own_display_name", func(t *testing.T) {
		member, err := basetypes.MemberByDisplayName[shipmentStatus]("PendingDuplicate")

		require.NoError(t, err)
		assert.Equal(t, statusPendingDuplicate, member)
	})

	t.Run("lookup_is_case_sensitive", func(t *testing.T) {
		member, err := basetypes.MemberByDisplayName[shipmentStatus]("delivered")

		require.ErrorIs(t, err, basetypes.ErrNoSuchMember)
		assert.Zero(t, member)
	})

	t.Run("unknown_display_name_fails_with_no_such_member", func(t *testing.T) {
		_, err := basetypes.MemberByDisplayName[shipmentStatus]("Lost")

		require.ErrorIs(t, err, basetypes.ErrNoSuchMember)
	})
}

func Test_Members_ConcurrentFirstAccessYieldsOneConsistentSet(t *testing.T) {
	const goroutines = 32

	group := errgroup.Group{}
	results := make([][]registryProbe, goroutines)

	for idx := range goroutines {
		group.Go(func() error {
			members := basetypes.Members[registryProbe]()
			if len(members) != 3 {
				return fmt.Errorf("expected 3 members, got %d", len(members))
			}

			results[idx] = members

			return nil
		})
	}

	require.NoError(t, group.Wait())

	expected := []registryProbe{probeOne, probeTwo, probeThree}
	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}
