package model

// VMContext identifies the inspected VM and the VPC network its first
// interface is attached to. Built once per run and never mutated.
type VMContext struct {
	Name    string
	Project string
	Zone    string
	Network string
}
