package api

// Lead kanban statuses
const (
	StatusLeadGeneration = "lead_generation"
	StatusFollowUp       = "follow_up"
	StatusQuotation      = "quotation"
	StatusDeals          = "deals"
	StatusOnboarding     = "onboarding"
	StatusRetention      = "retention"
)

// Deal types
const (
	DealNew                 = "New Deal"
	DealMigration           = "Migration"
	DealUpdatePackage       = "Update Package"
	DealRefreshmentTraining = "Refreshment Training"
	DealUpselling           = "Upselling"
	DealRoomUpdate          = "Room Update"
)

type (
	Lead struct {
		LeadID                string     `json:"lead_id,omitempty"`
		Property              string     `json:"property"`
		Source                string     `json:"source,omitempty"`
		Type                  string     `json:"type,omitempty"`
		Coordinates           *string    `json:"coordinates,omitempty"`
		Address               string     `json:"address,omitempty"`
		GpPIC                 string     `json:"gp_pic"`
		DateIn                string     `json:"date_in"`
		StatusKanban          string     `json:"status_kanban,omitempty"`
		PICs                  []*LeadPIC `json:"pics"`
		ReferralOrAffiliateBy *string    `json:"referral_or_affiliate_by,omitempty"`
		CommissionAmount      *string    `json:"commission_amount,omitempty"`
		CreatedAt             string     `json:"created_at,omitempty"`
		EditedAt              string     `json:"edited_at,omitempty"`
	}

	LeadPIC struct {
		ID          int    `json:"id,omitempty"`
		PICName     string `json:"pic_name"`
		PhoneNumber string `json:"phone_number,omitempty"`
		Whatsapp    string `json:"whatsapp,omitempty"`
		Email       string `json:"email,omitempty"`
	}

	FollowUp struct {
		ID        int    `json:"id,omitempty"`
		Lead      string `json:"lead"`
		PICGp     string `json:"pic_gp"`
		PICLead   string `json:"pic_lead"`
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Objective string `json:"objective,omitempty"`
		Stage     string `json:"stage,omitempty"`
		FuType    string `json:"fu_type"`
		Notes     string `json:"notes"`
		CreatedAt string `json:"created_at,omitempty"`
		EditedAt  string `json:"edited_at,omitempty"`
	}

	Meeting struct {
		ID          int     `json:"id,omitempty"`
		Lead        string  `json:"lead"`
		PICGp       string  `json:"pic_gp"`
		PICLead     string  `json:"pic_lead"`
		Date        string  `json:"date"`
		StartTime   string  `json:"start_time"`
		EndTime     string  `json:"end_time"`
		Objective   string  `json:"objective,omitempty"`
		Stage       string  `json:"stage,omitempty"`
		MeetingType string  `json:"meeting_type"`
		Location    *string `json:"location,omitempty"`
		Coordinates *string `json:"coordinates,omitempty"`
		Mom         string  `json:"mom"`
		CreatedAt   string  `json:"created_at,omitempty"`
		EditedAt    string  `json:"edited_at,omitempty"`
	}

	Quotation struct {
		QuotationID   int     `json:"quotation_id,omitempty"`
		Lead          string  `json:"lead"`
		PICGp         string  `json:"pic_gp"`
		Date          string  `json:"date"`
		LinkQuotation *string `json:"link_quotation,omitempty"`
		IsSend        bool    `json:"is_send"`
		CreatedAt     string  `json:"created_at,omitempty"`
		EditedAt      string  `json:"edited_at,omitempty"`
	}

	Deal struct {
		DealID                  string        `json:"deal_id,omitempty"`
		Lead                    string        `json:"lead"`
		DealBy                  string        `json:"deal_by"`
		DealType                string        `json:"deal_type"`
		Date                    string        `json:"date,omitempty"`
		Room                    int           `json:"room"`
		ProjectManager          *string       `json:"project_manager,omitempty"`
		Notes                   *string       `json:"notes,omitempty"`
		NikNpwp                 *string       `json:"nik_npwp,omitempty"`
		Management              *string       `json:"management,omitempty"`
		LinkInvoice             *string       `json:"link_invoice,omitempty"`
		InvoiceIssued           bool          `json:"invoice_issued"`
		SubscribeChanged        bool          `json:"subscribe_changed"`
		PaidDate                *string       `json:"paid_date,omitempty"`
		IsPaid                  bool          `json:"is_paid"`
		BuktiPayment            *string       `json:"bukti_payment,omitempty"`
		PICPenerimaBuktiBayar   *string       `json:"pic_penerima_bukti_bayar,omitempty"`
		IsPartialPayment        bool          `json:"is_partial_payment"`
		LinkPaymentReceipt      *string       `json:"link_payment_receipt,omitempty"`
		IsInvoiceSendToCustomer bool          `json:"is_invoice_send_to_customer"`
		PICLead                 *int          `json:"pic_lead,omitempty"`
		AccountManager          *string       `json:"account_manager,omitempty"`
		Details                 []*DealDetail `json:"details"`
		LeadProperty            string        `json:"lead_property,omitempty"`
		LeadPICGp               string        `json:"lead_pic_gp,omitempty"`
		PICLeadName             string        `json:"pic_lead_name,omitempty"`
		PICLeadContact          string        `json:"pic_lead_contact,omitempty"`
		PICLeadEmail            string        `json:"pic_lead_email,omitempty"`
		CreatedAt               string        `json:"created_at,omitempty"`
		EditedAt                string        `json:"edited_at,omitempty"`
	}

	DealDetail struct {
		DealDetailID              string `json:"deal_detail_id,omitempty"`
		Package                   string `json:"package"`
		ProductInitiation         string `json:"product_initiation"`
		ProductInitiationAmount   string `json:"product_initiation_amount,omitempty"`
		ProductInitiationAmountBy string `json:"product_initiation_amount_by"`
	}

	// User is a dashboard account; Password is write-only.
	User struct {
		ID       int    `json:"id,omitempty"`
		Username string `json:"username"`
		Email    string `json:"email,omitempty"`
		Password string `json:"password,omitempty"`
	}

	Activity struct {
		ID          int    `json:"id,omitempty"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		Date        string `json:"date"`
		Status      string `json:"status,omitempty"`
		CreatedAt   string `json:"created_at,omitempty"`
	}
)
