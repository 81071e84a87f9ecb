// Package project reads and writes the interchange form of a model.Project.
//
// The same schema is available as YAML and JSON:
//
//	name: DEMO
//	maps:
//	  - name: MAPA01
//	    mapset_name: MAPSET01
//	    size: [24, 80]
//	    fields:
//	      - name: CUSTNO
//	        line: 5
//	        column: 20
//	        length: 8
//	        field_type: INPUT
//	        attributes: [UNPROT, IC]
//
// Import is forgiving: missing values take the model defaults, unknown field
// types become INPUT and unknown attribute keywords are dropped.
package project
