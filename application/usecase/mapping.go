package usecase

import (
	"time"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
)

func installmentView(inst model.Installment, today time.Time) dto.InstallmentView {
	view := dto.InstallmentView{
		Number:       inst.Number,
		Scheduled:    inst.Scheduled,
		Discount:     inst.Discount,
		Paid:         inst.Paid,
		PrincipalDue: inst.PrincipalDue(),
		Mora:         inst.Mora,
		Total:        inst.TotalDue(),
		Status:       inst.StatusAsOf(today).String(),
	}
	if date, ok := inst.Due.Date(); ok {
		view.DueDate = &date
	}
	return view
}

func creditResponse(c model.Credit, today time.Time) dto.CreditResponse {
	resp := dto.CreditResponse{
		ID:               c.ID(),
		Modality:         c.Modality().String(),
		Status:           c.Status().String(),
		Principal:        c.Principal(),
		NominalRate:      c.NominalRate(),
		InstallmentCount: c.InstallmentCount(),
		OriginCreditID:   c.OriginCreditID(),
		CreatedAt:        c.CreatedAt(),
	}
	if !c.Periodicity().IsZero() {
		resp.Periodicity = c.Periodicity().String()
	}
	for _, inst := range c.Installments() {
		resp.Installments = append(resp.Installments, installmentView(inst, today))
	}
	return resp
}

func resolveAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return time.Now().UTC()
	}
	return asOf
}
