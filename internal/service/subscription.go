package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

const subscriptionPeriod = 30 * 24 * time.Hour

const subscriptionCurrency = "INR"

var planPrices = map[entity.Plan]decimal.Decimal{
	entity.PlanPro:    decimal.New(19, 0),
	entity.PlanAgency: decimal.New(39, 0),
}

// CreateUpgradeOrder opens a payment order for a plan upgrade. The plan is
// activated only after the payment is verified.
func (s *Service) CreateUpgradeOrder(ctx context.Context, plan entity.Plan) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	price, ok := planPrices[plan]
	if !ok {
		return entity.CheckoutSession{}, fmt.Errorf("%w: plan %q is not purchasable", entity.ErrInvalidArgument, plan)
	}

	receipt := fmt.Sprintf("subscription_%s_%s", plan, user.ID.String()[:8])

	session, err := s.razorpay.CreateOrder(ctx, price, subscriptionCurrency, receipt, map[string]string{
		"user_id": user.ID.String(),
		"plan":    plan.String(),
		"type":    "subscription",
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create upgrade order: %w", err)
	}

	return session, nil
}

// ActivateSubscription verifies the payment signature and switches the user
// to the paid plan for one billing period.
func (s *Service) ActivateSubscription(ctx context.Context, plan entity.Plan, orderID, paymentID, signature string) (entity.Subscription, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Subscription{}, err
	}

	if _, ok := planPrices[plan]; !ok {
		return entity.Subscription{}, fmt.Errorf("%w: plan %q is not purchasable", entity.ErrInvalidArgument, plan)
	}

	err = s.razorpay.VerifySignature(orderID, paymentID, signature)
	if err != nil {
		return entity.Subscription{}, fmt.Errorf("verify payment %q: %w", paymentID, err)
	}

	now := time.Now()
	endDate := now.Add(subscriptionPeriod)

	sub := entity.Subscription{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    user.ID,
		Plan:      plan,
		Status:    entity.SubscriptionStatusActive,
		StartDate: now,
		EndDate:   &endDate,
		CreatedAt: now,
	}

	err = s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return entity.Subscription{}, fmt.Errorf("create subscription: %w", err)
	}

	err = s.repo.UpdateUserPlan(ctx, user.ID, plan, entity.SubscriptionStateActive)
	if err != nil {
		return entity.Subscription{}, fmt.Errorf("update user %s plan: %w", user.ID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Subscription %s activated for user %s until %s",
		plan, user.ID, endDate.Format(time.RFC3339)))

	return sub, nil
}

// Subscription returns the caller's current plan and active subscription, if
// any. A user on the free plan has no subscription row.
func (s *Service) Subscription(ctx context.Context) (entity.User, *entity.Subscription, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.User{}, nil, err
	}

	sub, err := s.repo.SubscriptionForUser(ctx, user.ID)
	switch {
	case err == nil:
		return user, &sub, nil
	case errors.Is(err, entity.ErrNotFound):
		return user, nil, nil
	default:
		return entity.User{}, nil, fmt.Errorf("get subscription for user %s: %w", user.ID, err)
	}
}

// RunSubscriptionSweep expires lapsed subscriptions and downgrades their
// users back to the free plan.
func (s *Service) RunSubscriptionSweep(ctx context.Context) error {
	now := time.Now()

	subs, err := s.repo.ActiveSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("get active subscriptions: %w", err)
	}

	var (
		errs    []error
		expired int
	)

	for _, sub := range subs {
		if !sub.Expired(now) {
			continue
		}

		err = s.repo.CancelSubscription(ctx, sub.ID, now, entity.CancellationReasonExpiredUnpaid)
		if err != nil {
			errs = append(errs, fmt.Errorf("cancel subscription %s: %w", sub.ID, err))
			continue
		}

		err = s.repo.UpdateUserPlan(ctx, sub.UserID, entity.PlanFree, entity.SubscriptionStateInactive)
		if err != nil {
			errs = append(errs, fmt.Errorf("downgrade user %s: %w", sub.UserID, err))
			continue
		}

		slog.InfoContext(ctx, fmt.Sprintf("Subscription %s expired, user %s downgraded to free",
			sub.ID, sub.UserID))

		expired++
	}

	slog.InfoContext(ctx, fmt.Sprintf("Subscription sweep checked %d subscriptions, expired %d", len(subs), expired))

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
