package repository

import "kathasales/models"

// VoucherRepository serves either the receipts or the payments table;
// construct one per kind. Every mutation posts the party's running balance
// in the same transaction as the voucher row, so a crash can never leave
// the balance and the vouchers disagreeing.
type VoucherRepository interface {
	CreateVoucher(voucher *models.Voucher) error
	GetVouchers() ([]*models.Voucher, error)
	GetVoucherByID(id int64) (*models.Voucher, error)
	UpdateVoucher(voucher *models.Voucher) error
	DeleteVoucher(id int64) error
}
