package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"carstock/internal/errors"
	"carstock/pkg/contracts/domain"
)

// recordFieldCount is the fixed field layout of one inventory line:
// registration, make, model, mileage, price.
const recordFieldCount = 5

// ParseLine turns one raw input line into a CarRecord. The line is split on
// commas with no quoting or escaping, so embedded commas in make or model
// are not supported. Fields are taken as-is: no whitespace trimming and no
// coercion beyond integer parsing of mileage and price. A rejection returns
// a *errors.MalformedRecordError.
func ParseLine(line string) (domain.CarRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != recordFieldCount {
		return domain.CarRecord{}, &errors.MalformedRecordError{
			Reason: fmt.Sprintf("expected %d fields, got %d", recordFieldCount, len(fields)),
		}
	}

	mileage, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.CarRecord{}, &errors.MalformedRecordError{
			Reason: fmt.Sprintf("mileage %q is not an integer", fields[3]),
		}
	}

	price, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return domain.CarRecord{}, &errors.MalformedRecordError{
			Reason: fmt.Sprintf("price %q is not an integer", fields[4]),
		}
	}

	return domain.CarRecord{
		Registration: fields[0],
		Make:         fields[1],
		Model:        fields[2],
		Mileage:      mileage,
		Price:        price,
	}, nil
}
