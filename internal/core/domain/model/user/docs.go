// Package user contains the User aggregate and the closed Role enum.
// A user registers with the default user role; the rider role is granted as a
// side effect of rider approval, and the admin role only through the
// administrative role-change operation.
package user
