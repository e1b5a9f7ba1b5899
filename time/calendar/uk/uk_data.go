package uk

import (
	"time"

	"github.com/therootcompany/bankholiday/time/calendar"
)

// exceptions are one-off changes made by royal proclamation. Moved holidays
// come in pairs: the usual date forced off and the new date forced on.
// Add new events here; they are never inferred.
// See https://www.gov.uk/bank-holidays
var exceptions = calendar.ExceptionTable{
	{Year: 1995, Month: time.May, Day: 1}: {Holiday: false, Reason: "Early May Bank Holiday (moved for VE Day)"},
	{Year: 1995, Month: time.May, Day: 8}: {Holiday: true, Reason: "VE Day 50th anniversary"},

	{Year: 1999, Month: time.December, Day: 31}: {Holiday: true, Reason: "Millennium Celebrations"},

	{Year: 2002, Month: time.May, Day: 27}: {Holiday: false, Reason: "Spring Bank Holiday (moved for the Golden Jubilee)"},
	{Year: 2002, Month: time.June, Day: 3}: {Holiday: true, Reason: "Spring Bank Holiday"},
	{Year: 2002, Month: time.June, Day: 4}: {Holiday: true, Reason: "Queen's Golden Jubilee"},

	{Year: 2011, Month: time.April, Day: 29}: {Holiday: true, Reason: "Royal Wedding"},

	{Year: 2012, Month: time.May, Day: 28}: {Holiday: false, Reason: "Spring Bank Holiday (moved for the Diamond Jubilee)"},
	{Year: 2012, Month: time.June, Day: 4}: {Holiday: true, Reason: "Spring Bank Holiday"},
	{Year: 2012, Month: time.June, Day: 5}: {Holiday: true, Reason: "Queen's Diamond Jubilee"},

	{Year: 2020, Month: time.May, Day: 4}: {Holiday: false, Reason: "Early May Bank Holiday (moved for VE Day)"},
	{Year: 2020, Month: time.May, Day: 8}: {Holiday: true, Reason: "Early May Bank Holiday (VE Day)"},

	{Year: 2022, Month: time.May, Day: 30}:       {Holiday: false, Reason: "Spring Bank Holiday (moved for the Platinum Jubilee)"},
	{Year: 2022, Month: time.June, Day: 2}:       {Holiday: true, Reason: "Spring Bank Holiday"},
	{Year: 2022, Month: time.June, Day: 3}:       {Holiday: true, Reason: "Platinum Jubilee Bank Holiday"},
	{Year: 2022, Month: time.September, Day: 19}: {Holiday: true, Reason: "State Funeral of Queen Elizabeth II"},

	{Year: 2023, Month: time.May, Day: 8}: {Holiday: true, Reason: "Coronation of King Charles III"},
}
