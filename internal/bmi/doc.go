// Package bmi computes and classifies Body Mass Index.
//
// A Measurement holds weight in kilograms and height in centimeters and
// rejects negative values when they are assigned. The Standard formula is
// weight / (height/100)^2 and yields 0 for a zero height. Thresholds maps the
// resulting value to one of four categories; each category carries a user
// message and a severity tier for display.
package bmi
