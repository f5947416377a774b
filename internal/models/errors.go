package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// MapErrors maps "<field>_<tag>" validation failures to user-facing messages.
var MapErrors = MapErrs{
	"sku_required":              {Code: "SKU_REQUIRED", ErrorMessage: errors.New("produk belum dipilih")},
	"customer_no_required":      {Code: "CUSTOMER_REQUIRED", ErrorMessage: errors.New("nomor pelanggan harus diisi")},
	"customer_no_numeric":       {Code: "CUSTOMER_INVALID", ErrorMessage: errors.New("nomor pelanggan hanya boleh berisi angka")},
	"customer_no_min":           {Code: "CUSTOMER_INVALID", ErrorMessage: errors.New("nomor pelanggan terlalu pendek")},
	"customer_no_max":           {Code: "CUSTOMER_INVALID", ErrorMessage: errors.New("nomor pelanggan terlalu panjang")},
	"Amount_decimalGreaterThan": {Code: "AMOUNT_INVALID", ErrorMessage: errors.New("nominal deposit harus lebih dari nol")},
	"email_email":               {Code: "EMAIL_INVALID", ErrorMessage: errors.New("format email tidak valid")},
	"name_noStartEndSpaces":     {Code: "NAME_INVALID", ErrorMessage: errors.New("nama tidak boleh diawali atau diakhiri spasi")},
	"base_url_required":         {Code: "CONFIG_INVALID", ErrorMessage: errors.New("api base url is required")},
	"platform_oneof":            {Code: "CONFIG_INVALID", ErrorMessage: errors.New("platform must be android or ios")},
	"driver_oneof":              {Code: "CONFIG_INVALID", ErrorMessage: errors.New("storage driver must be badger or redis")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
