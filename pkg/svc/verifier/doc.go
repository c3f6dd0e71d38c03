// Package verifier checks a freshly provisioned cluster by waiting a fixed
// settle delay and then listing its nodes through kubectl.
//
// The node table is forwarded to the operator as kubectl prints it. The
// verifier does not parse it and does not decide whether nodes are Ready.
package verifier
