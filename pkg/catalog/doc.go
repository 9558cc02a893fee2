/*
Package catalog turns the two independently maintained metadata documents into
calculator definitions.

The path index maps a calculator name to its numeric identity and the relative
path of its implementation. The field-mapping index maps an identity to a set
of metadata keys plus the translation table from external field labels to the
parameter names the implementation expects. Both documents are decoded with
their key order intact, because slug disambiguation follows document order.
*/
package catalog
