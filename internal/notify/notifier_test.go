package notify

import (
	"context"
	"errors"
	"testing"

	"katiba/internal/domain"
	"katiba/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifier_NotifyOrder(t *testing.T) {
	ctx := context.Background()
	order := testutil.NewTestOrder(10, "Ahmed", testutil.Date(2026, 1, 15), domain.SpecialtyDJ, domain.SpecialtyLaser)
	roster := []domain.Member{
		testutil.NewTestMember(1, "A", domain.SpecialtyDJ),
		testutil.NewTestMember(2, "B", domain.SpecialtyScreens),
		testutil.NewTestMember(3, "C", domain.SpecialtyAll),
	}

	members := new(testutil.MockMemberRepository)
	members.On("ListRegisteredMembers", ctx).Return(roster, nil)

	sender := new(testutil.MockSender)
	sender.On("Send", ctx, int64(1), mock.AnythingOfType("string")).Return(errors.New("blocked by user"))
	sender.On("Send", ctx, int64(3), mock.AnythingOfType("string")).Return(nil)

	n := NewNotifier(members, sender, testutil.NewTestLogger())

	report, err := n.NotifyOrder(ctx, order)

	require.NoError(t, err)
	assert.Equal(t, int64(10), report.OrderID)
	require.Len(t, report.Results, 2)
	assert.Equal(t, 1, report.Delivered())
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, int64(1), report.Failed()[0].UserID)

	// the failure for member 1 did not stop delivery to member 3
	sender.AssertCalled(t, "Send", ctx, int64(3), mock.AnythingOfType("string"))
	sender.AssertNotCalled(t, "Send", ctx, int64(2), mock.Anything)
	members.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestNotifier_NotifyOrder_NoSpecialties(t *testing.T) {
	members := new(testutil.MockMemberRepository)
	sender := new(testutil.MockSender)
	n := NewNotifier(members, sender, testutil.NewTestLogger())

	order := testutil.NewTestOrder(11, "Ahmed", testutil.Date(2026, 1, 15))

	report, err := n.NotifyOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.Empty(t, report.Results)
	members.AssertNotCalled(t, "ListRegisteredMembers", mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifier_NotifyOrder_RosterError(t *testing.T) {
	ctx := context.Background()
	members := new(testutil.MockMemberRepository)
	members.On("ListRegisteredMembers", ctx).Return(nil, errors.New("db down"))
	sender := new(testutil.MockSender)

	n := NewNotifier(members, sender, testutil.NewTestLogger())
	order := testutil.NewTestOrder(12, "Ahmed", testutil.Date(2026, 1, 15), domain.SpecialtyAll)

	report, err := n.NotifyOrder(ctx, order)

	assert.Error(t, err)
	assert.Empty(t, report.Results)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifier_NotifyOrder_WildcardOrderReachesAll(t *testing.T) {
	ctx := context.Background()
	roster := []domain.Member{
		testutil.NewTestMember(1, "A", domain.SpecialtyDJ),
		testutil.NewTestMember(2, "B", domain.SpecialtyScreens),
	}
	members := new(testutil.MockMemberRepository)
	members.On("ListRegisteredMembers", ctx).Return(roster, nil)
	sender := new(testutil.MockSender)
	sender.On("Send", ctx, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).Return(nil)

	n := NewNotifier(members, sender, testutil.NewTestLogger())
	order := testutil.NewTestOrder(13, "Ahmed", testutil.Date(2026, 1, 15), domain.SpecialtyAll)

	report, err := n.NotifyOrder(ctx, order)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered())
	sender.AssertNumberOfCalls(t, "Send", 2)
}
