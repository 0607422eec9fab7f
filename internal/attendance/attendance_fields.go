package attendance

import "construct-erp/internal/shared/querymap"

// Filterable and assignable fields of attendance_records, keyed by the names
// used in API payloads.
const (
	FieldID                  = "id"
	FieldSiteID              = "siteId"
	FieldSiteName            = "siteName"
	FieldForemanID           = "foremanId"
	FieldForemanName         = "foremanName"
	FieldDate                = "date"
	FieldStatus              = "status"
	FieldInTime              = "inTime"
	FieldOutTime             = "outTime"
	FieldSubmittedAt         = "submittedAt"
	FieldReviewedAt          = "reviewedAt"
	FieldApprovedAt          = "approvedAt"
	FieldRejectedAt          = "rejectedAt"
	FieldMarkedBy            = "markedBy"
	FieldReviewedBy          = "reviewedBy"
	FieldApprovedBy          = "approvedBy"
	FieldRejectedBy          = "rejectedBy"
	FieldInchargeComments    = "inchargeComments"
	FieldAdminComments       = "adminComments"
	FieldRejectionReason     = "rejectionReason"
	FieldTotalWorkers        = "totalWorkers"
	FieldPresentWorkers      = "presentWorkers"
	FieldEffectiveApprovedAt = "effectiveApprovedAt"
)

var recordFields = querymap.NewFieldMap("attendance record", map[string]string{
	FieldID:                  "id",
	FieldSiteID:              "site_id",
	FieldSiteName:            "site_name",
	FieldForemanID:           "foreman_id",
	FieldForemanName:         "foreman_name",
	FieldDate:                "date",
	FieldStatus:              "status",
	FieldInTime:              "in_time",
	FieldOutTime:             "out_time",
	FieldSubmittedAt:         "submitted_at",
	FieldReviewedAt:          "reviewed_at",
	FieldApprovedAt:          "approved_at",
	FieldRejectedAt:          "rejected_at",
	FieldMarkedBy:            "marked_by",
	FieldReviewedBy:          "reviewed_by",
	FieldApprovedBy:          "approved_by",
	FieldRejectedBy:          "rejected_by",
	FieldInchargeComments:    "incharge_comments",
	FieldAdminComments:       "admin_comments",
	FieldRejectionReason:     "rejection_reason",
	FieldTotalWorkers:        "total_workers",
	FieldPresentWorkers:      "present_workers",
	FieldEffectiveApprovedAt: "COALESCE(approved_at, date)",
})

// RecordFields exposes the record field table to other packages.
func RecordFields() querymap.FieldMap {
	return recordFields
}
