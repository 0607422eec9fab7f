package attendance

type EntryRequest struct {
	WorkerID    string   `json:"workerId" binding:"required"`
	WorkerName  string   `json:"workerName"`
	Designation string   `json:"designation"`
	IsPresent   bool     `json:"isPresent"`
	HoursWorked float64  `json:"hoursWorked"`
	FormulaX    *int     `json:"formulaX"`
	FormulaY    *float64 `json:"formulaY"`
	Remarks     *string  `json:"remarks"`
}

// Required fields are checked in the service so the response message stays
// "Missing required fields".
type SubmitAttendanceRequest struct {
	Date    string         `json:"date"`
	Entries []EntryRequest `json:"entries" binding:"dive"`
	InTime  *string        `json:"inTime"`
	OutTime *string        `json:"outTime"`
}

type ReviewAttendanceRequest struct {
	Entries  []EntryRequest `json:"entries" binding:"dive"`
	Comments *string        `json:"comments"`
}

type ApproveAttendanceRequest struct {
	Comments *string `json:"comments"`
}

type RejectAttendanceRequest struct {
	Reason string `json:"reason"`
}

type UpdateAttendanceRequest struct {
	Entries       []EntryRequest `json:"entries" binding:"omitempty,dive"`
	InTime        *string        `json:"inTime"`
	OutTime       *string        `json:"outTime"`
	AdminComments *string        `json:"adminComments"`
}

type CheckSubmissionResponse struct {
	HasSubmitted bool `json:"hasSubmitted"`
}

type EntryResponse struct {
	WorkerID    string  `json:"workerId"`
	WorkerName  string  `json:"workerName"`
	Designation string  `json:"designation"`
	IsPresent   bool    `json:"isPresent"`
	HoursWorked float64 `json:"hoursWorked"`
	FormulaX    int     `json:"formulaX"`
	FormulaY    float64 `json:"formulaY"`
	Remarks     *string `json:"remarks,omitempty"`
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	SiteID           string          `json:"siteId"`
	SiteName         string          `json:"siteName"`
	ForemanID        string          `json:"foremanId"`
	ForemanName      string          `json:"foremanName"`
	Status           string          `json:"status"`
	Entries          []EntryResponse `json:"entries"`
	InTime           *string         `json:"inTime,omitempty"`
	OutTime          *string         `json:"outTime,omitempty"`
	SubmittedAt      string          `json:"submittedAt"`
	ReviewedAt       *string         `json:"reviewedAt,omitempty"`
	ApprovedAt       *string         `json:"approvedAt,omitempty"`
	RejectedAt       *string         `json:"rejectedAt,omitempty"`
	MarkedBy         string          `json:"markedBy"`
	ReviewedBy       *string         `json:"reviewedBy,omitempty"`
	ApprovedBy       *string         `json:"approvedBy,omitempty"`
	RejectedBy       *string         `json:"rejectedBy,omitempty"`
	InchargeComments *string         `json:"inchargeComments,omitempty"`
	AdminComments    *string         `json:"adminComments,omitempty"`
	RejectionReason  *string         `json:"rejectionReason,omitempty"`
	TotalWorkers     int             `json:"totalWorkers"`
	PresentWorkers   int             `json:"presentWorkers"`
}
