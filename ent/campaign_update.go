// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/schema"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTargeting sets the "targeting" field.
func (_u *CampaignUpdate) SetTargeting(v *schema.CampaignTargeting) *CampaignUpdate {
	_u.mutation.SetTargeting(v)
	return _u
}

// ClearTargeting clears the value of the "targeting" field.
func (_u *CampaignUpdate) ClearTargeting() *CampaignUpdate {
	_u.mutation.ClearTargeting()
	return _u
}

// SetIsAbTest sets the "is_ab_test" field.
func (_u *CampaignUpdate) SetIsAbTest(v bool) *CampaignUpdate {
	_u.mutation.SetIsAbTest(v)
	return _u
}

// SetNillableIsAbTest sets the "is_ab_test" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableIsAbTest(v *bool) *CampaignUpdate {
	if v != nil {
		_u.SetIsAbTest(*v)
	}
	return _u
}

// SetVariants sets the "variants" field.
func (_u *CampaignUpdate) SetVariants(v []schema.CampaignVariant) *CampaignUpdate {
	_u.mutation.SetVariants(v)
	return _u
}

// AppendVariants appends value to the "variants" field.
func (_u *CampaignUpdate) AppendVariants(v []schema.CampaignVariant) *CampaignUpdate {
	_u.mutation.AppendVariants(v)
	return _u
}

// ClearVariants clears the value of the "variants" field.
func (_u *CampaignUpdate) ClearVariants() *CampaignUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// SetContent sets the "content" field.
func (_u *CampaignUpdate) SetContent(v string) *CampaignUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableContent(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CampaignUpdate) ClearContent() *CampaignUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CampaignUpdate) SetScheduledAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableScheduledAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *CampaignUpdate) ClearScheduledAt() *CampaignUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetTargetedCount sets the "targeted_count" field.
func (_u *CampaignUpdate) SetTargetedCount(v int) *CampaignUpdate {
	_u.mutation.ResetTargetedCount()
	_u.mutation.SetTargetedCount(v)
	return _u
}

// SetNillableTargetedCount sets the "targeted_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTargetedCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetTargetedCount(*v)
	}
	return _u
}

// AddTargetedCount adds value to the "targeted_count" field.
func (_u *CampaignUpdate) AddTargetedCount(v int) *CampaignUpdate {
	_u.mutation.AddTargetedCount(v)
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *CampaignUpdate) SetDeliveredCount(v int) *CampaignUpdate {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDeliveredCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *CampaignUpdate) AddDeliveredCount(v int) *CampaignUpdate {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdate) SetFailedCount(v int) *CampaignUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFailedCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdate) AddFailedCount(v int) *CampaignUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetReadCount sets the "read_count" field.
func (_u *CampaignUpdate) SetReadCount(v int) *CampaignUpdate {
	_u.mutation.ResetReadCount()
	_u.mutation.SetReadCount(v)
	return _u
}

// SetNillableReadCount sets the "read_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableReadCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetReadCount(*v)
	}
	return _u
}

// AddReadCount adds value to the "read_count" field.
func (_u *CampaignUpdate) AddReadCount(v int) *CampaignUpdate {
	_u.mutation.AddReadCount(v)
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *CampaignUpdate) SetResponseCount(v int) *CampaignUpdate {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableResponseCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *CampaignUpdate) AddResponseCount(v int) *CampaignUpdate {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetConversionCount sets the "conversion_count" field.
func (_u *CampaignUpdate) SetConversionCount(v int) *CampaignUpdate {
	_u.mutation.ResetConversionCount()
	_u.mutation.SetConversionCount(v)
	return _u
}

// SetNillableConversionCount sets the "conversion_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableConversionCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetConversionCount(*v)
	}
	return _u
}

// AddConversionCount adds value to the "conversion_count" field.
func (_u *CampaignUpdate) AddConversionCount(v int) *CampaignUpdate {
	_u.mutation.AddConversionCount(v)
	return _u
}

// SetSkippedNoConsentCount sets the "skipped_no_consent_count" field.
func (_u *CampaignUpdate) SetSkippedNoConsentCount(v int) *CampaignUpdate {
	_u.mutation.ResetSkippedNoConsentCount()
	_u.mutation.SetSkippedNoConsentCount(v)
	return _u
}

// SetNillableSkippedNoConsentCount sets the "skipped_no_consent_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSkippedNoConsentCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSkippedNoConsentCount(*v)
	}
	return _u
}

// AddSkippedNoConsentCount adds value to the "skipped_no_consent_count" field.
func (_u *CampaignUpdate) AddSkippedNoConsentCount(v int) *CampaignUpdate {
	_u.mutation.AddSkippedNoConsentCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CampaignUpdate) SetMetadata(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CampaignUpdate) ClearMetadata() *CampaignUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdate) SetDeletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDeletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdate) ClearDeletedAt() *CampaignUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.tenant"`)
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Targeting(); ok {
		_spec.SetField(campaign.FieldTargeting, field.TypeJSON, value)
	}
	if _u.mutation.TargetingCleared() {
		_spec.ClearField(campaign.FieldTargeting, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsAbTest(); ok {
		_spec.SetField(campaign.FieldIsAbTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Variants(); ok {
		_spec.SetField(campaign.FieldVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldVariants, value)
		})
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(campaign.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(campaign.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(campaign.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(campaign.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(campaign.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TargetedCount(); ok {
		_spec.SetField(campaign.FieldTargetedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetedCount(); ok {
		_spec.AddField(campaign.FieldTargetedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadCount(); ok {
		_spec.SetField(campaign.FieldReadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadCount(); ok {
		_spec.AddField(campaign.FieldReadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(campaign.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(campaign.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionCount(); ok {
		_spec.SetField(campaign.FieldConversionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionCount(); ok {
		_spec.AddField(campaign.FieldConversionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedNoConsentCount(); ok {
		_spec.SetField(campaign.FieldSkippedNoConsentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedNoConsentCount(); ok {
		_spec.AddField(campaign.FieldSkippedNoConsentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(campaign.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(campaign.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTargeting sets the "targeting" field.
func (_u *CampaignUpdateOne) SetTargeting(v *schema.CampaignTargeting) *CampaignUpdateOne {
	_u.mutation.SetTargeting(v)
	return _u
}

// ClearTargeting clears the value of the "targeting" field.
func (_u *CampaignUpdateOne) ClearTargeting() *CampaignUpdateOne {
	_u.mutation.ClearTargeting()
	return _u
}

// SetIsAbTest sets the "is_ab_test" field.
func (_u *CampaignUpdateOne) SetIsAbTest(v bool) *CampaignUpdateOne {
	_u.mutation.SetIsAbTest(v)
	return _u
}

// SetNillableIsAbTest sets the "is_ab_test" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableIsAbTest(v *bool) *CampaignUpdateOne {
	if v != nil {
		_u.SetIsAbTest(*v)
	}
	return _u
}

// SetVariants sets the "variants" field.
func (_u *CampaignUpdateOne) SetVariants(v []schema.CampaignVariant) *CampaignUpdateOne {
	_u.mutation.SetVariants(v)
	return _u
}

// AppendVariants appends value to the "variants" field.
func (_u *CampaignUpdateOne) AppendVariants(v []schema.CampaignVariant) *CampaignUpdateOne {
	_u.mutation.AppendVariants(v)
	return _u
}

// ClearVariants clears the value of the "variants" field.
func (_u *CampaignUpdateOne) ClearVariants() *CampaignUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// SetContent sets the "content" field.
func (_u *CampaignUpdateOne) SetContent(v string) *CampaignUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableContent(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CampaignUpdateOne) ClearContent() *CampaignUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CampaignUpdateOne) SetScheduledAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableScheduledAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *CampaignUpdateOne) ClearScheduledAt() *CampaignUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetTargetedCount sets the "targeted_count" field.
func (_u *CampaignUpdateOne) SetTargetedCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetTargetedCount()
	_u.mutation.SetTargetedCount(v)
	return _u
}

// SetNillableTargetedCount sets the "targeted_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTargetedCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetTargetedCount(*v)
	}
	return _u
}

// AddTargetedCount adds value to the "targeted_count" field.
func (_u *CampaignUpdateOne) AddTargetedCount(v int) *CampaignUpdateOne {
	_u.mutation.AddTargetedCount(v)
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *CampaignUpdateOne) SetDeliveredCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDeliveredCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *CampaignUpdateOne) AddDeliveredCount(v int) *CampaignUpdateOne {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdateOne) SetFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFailedCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdateOne) AddFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetReadCount sets the "read_count" field.
func (_u *CampaignUpdateOne) SetReadCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetReadCount()
	_u.mutation.SetReadCount(v)
	return _u
}

// SetNillableReadCount sets the "read_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableReadCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetReadCount(*v)
	}
	return _u
}

// AddReadCount adds value to the "read_count" field.
func (_u *CampaignUpdateOne) AddReadCount(v int) *CampaignUpdateOne {
	_u.mutation.AddReadCount(v)
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *CampaignUpdateOne) SetResponseCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableResponseCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *CampaignUpdateOne) AddResponseCount(v int) *CampaignUpdateOne {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetConversionCount sets the "conversion_count" field.
func (_u *CampaignUpdateOne) SetConversionCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetConversionCount()
	_u.mutation.SetConversionCount(v)
	return _u
}

// SetNillableConversionCount sets the "conversion_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableConversionCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetConversionCount(*v)
	}
	return _u
}

// AddConversionCount adds value to the "conversion_count" field.
func (_u *CampaignUpdateOne) AddConversionCount(v int) *CampaignUpdateOne {
	_u.mutation.AddConversionCount(v)
	return _u
}

// SetSkippedNoConsentCount sets the "skipped_no_consent_count" field.
func (_u *CampaignUpdateOne) SetSkippedNoConsentCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetSkippedNoConsentCount()
	_u.mutation.SetSkippedNoConsentCount(v)
	return _u
}

// SetNillableSkippedNoConsentCount sets the "skipped_no_consent_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSkippedNoConsentCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSkippedNoConsentCount(*v)
	}
	return _u
}

// AddSkippedNoConsentCount adds value to the "skipped_no_consent_count" field.
func (_u *CampaignUpdateOne) AddSkippedNoConsentCount(v int) *CampaignUpdateOne {
	_u.mutation.AddSkippedNoConsentCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CampaignUpdateOne) SetMetadata(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CampaignUpdateOne) ClearMetadata() *CampaignUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdateOne) SetDeletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDeletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdateOne) ClearDeletedAt() *CampaignUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.tenant"`)
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Targeting(); ok {
		_spec.SetField(campaign.FieldTargeting, field.TypeJSON, value)
	}
	if _u.mutation.TargetingCleared() {
		_spec.ClearField(campaign.FieldTargeting, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsAbTest(); ok {
		_spec.SetField(campaign.FieldIsAbTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Variants(); ok {
		_spec.SetField(campaign.FieldVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldVariants, value)
		})
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(campaign.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(campaign.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(campaign.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(campaign.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(campaign.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TargetedCount(); ok {
		_spec.SetField(campaign.FieldTargetedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetedCount(); ok {
		_spec.AddField(campaign.FieldTargetedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadCount(); ok {
		_spec.SetField(campaign.FieldReadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadCount(); ok {
		_spec.AddField(campaign.FieldReadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(campaign.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(campaign.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionCount(); ok {
		_spec.SetField(campaign.FieldConversionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionCount(); ok {
		_spec.AddField(campaign.FieldConversionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedNoConsentCount(); ok {
		_spec.SetField(campaign.FieldSkippedNoConsentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedNoConsentCount(); ok {
		_spec.AddField(campaign.FieldSkippedNoConsentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(campaign.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(campaign.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
