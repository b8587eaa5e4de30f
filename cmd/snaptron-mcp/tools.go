package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/langmead-lab/snaptron-mcp/internal/snaptron"
)

// compilationHelp lists the compilations known at the time of writing; the
// registry tool fetches the live list. Compilation names are not validated
// locally — the service is authoritative.
const compilationHelp = "Snaptron compilation to query. Options include: " +
	"gtexv2 (GTEx recount3, ~19k samples), " +
	"srav3h (SRA human recount3, ~316k samples), " +
	"srav1m (SRA mouse recount3, ~417k samples), " +
	"tcgav2 (TCGA recount3, ~11k samples), " +
	"tcga (TCGA recount2), gtex (GTEx recount2), srav2 (SRA recount2). " +
	"Use snaptron_list_compilations to get the current list."

// registerTools registers all MCP tools on the server, wiring each to a
// handler that calls the Snaptron web services.
func registerTools(s *server.MCPServer, c *snaptron.Client) {
	s.AddTool(createListCompilationsTool(), handleListCompilations(c))
	s.AddTool(createQueryJunctionsTool(), handleQuery(c, snaptron.ResourceJunctions))
	s.AddTool(createQueryGenesTool(), handleQuery(c, snaptron.ResourceGenes))
	s.AddTool(createQuerySamplesTool(), handleQuery(c, snaptron.ResourceSamples))
	s.AddTool(createGetResultCountTool(), handleGetResultCount(c))
	s.AddTool(createBuildURLTool(), handleBuildURL(c))
}

// --- Tool definitions ---

func createListCompilationsTool() mcp.Tool {
	return mcp.NewTool("snaptron_list_compilations",
		mcp.WithDescription("Fetch the current registry of all active Snaptron compilations hosted by the Langmead lab. Returns a JSON object where keys are compilation names and values describe available metadata fields and their types (t=text, i=integer, f=float)."),
	)
}

func createQueryJunctionsTool() mcp.Tool {
	return mcp.NewTool("snaptron_query_junctions",
		mcp.WithDescription("Query splice junctions (introns) from a Snaptron compilation. Supports region-based queries (gene symbol or chromosomal coordinates), range filters on statistics, sample metadata filters, sample ID filters, and direct snaptron ID lookups. Returns TAB-delimited junction records with fields: snaptron_id, chromosome, start, end, length, strand, annotated, samples_count, coverage_sum, coverage_avg, coverage_median, etc."),
		mcp.WithString("compilation", mcp.Required(), mcp.Description(compilationHelp)),
		mcp.WithString("regions", mcp.Description("Genomic region to query. Can be a HUGO gene symbol (e.g. 'BRCA1') or chromosomal coordinates (e.g. 'chr21:1-500'). Required if using rfilter or sfilter.")),
		mcp.WithString("ids", mcp.Description("Comma-separated list of snaptron_ids to retrieve directly (e.g. '5,7,8'). Cannot be used with other parameters.")),
		mcp.WithArray("rfilter", mcp.WithStringItems(), mcp.Description("One or more range filter expressions on junction statistics. Format: fieldname[>:|<:|:]value. Fields: length, annotated, left_annotated, right_annotated, strand, samples_count, coverage_sum, coverage_avg, coverage_median. Examples: ['samples_count>:5', 'coverage_avg>:10.0', 'strand:+']")),
		mcp.WithArray("sfilter", mcp.WithStringItems(), mcp.Description("One or more sample metadata filter expressions. Format: fieldname:value (text) or fieldname>:value / fieldname<:value (numeric). Examples: ['description:cortex', 'SMRIN>:8', 'library_strategy:RNA-Seq']")),
		mcp.WithString("sids", mcp.Description("Limit results to junctions found in specific samples. Comma-separated rail_ids (e.g. '30,100,150') or a predefined group name (e.g. 'Brain' for GTEx). Requires 'regions' to also be set.")),
		mcp.WithNumber("contains", mcp.Description("If 1, return only junctions whose start AND end are within the region boundaries.")),
		mcp.WithNumber("exact", mcp.Description("If 1, return only junctions whose coordinates exactly match the region.")),
		mcp.WithNumber("either", mcp.Description("Return junctions where start (either=1) or end (either=2) matches the region boundary.")),
		mcp.WithNumber("header", mcp.DefaultNumber(1), mcp.Description("Include header line (1) or not (0). Default is 1.")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return (e.g. 'snaptron_id,chromosome,start,end,samples_count'). Can also include 'rc' to get result count.")),
	)
}

func createQueryGenesTool() mcp.Tool {
	return mcp.NewTool("snaptron_query_genes",
		mcp.WithDescription("Query gene-level data from a Snaptron compilation using the /genes endpoint. Supports region-based queries, range filters, and sample filters. Returns gene-level junction aggregations."),
		mcp.WithString("compilation", mcp.Required(), mcp.Description(compilationHelp)),
		mcp.WithString("regions", mcp.Description("Gene symbol (e.g. 'BRCA1') or coordinates (e.g. 'chr17:43044295-43170245').")),
		mcp.WithString("ids", mcp.Description("Comma-separated snaptron_ids. Cannot be used with other parameters.")),
		mcp.WithArray("rfilter", mcp.WithStringItems(), mcp.Description("Range filter expressions (same format as snaptron_query_junctions).")),
		mcp.WithArray("sfilter", mcp.WithStringItems(), mcp.Description("Sample metadata filter expressions.")),
		mcp.WithString("sids", mcp.Description("Sample IDs or group name to filter by.")),
		mcp.WithNumber("contains", mcp.Description("If 1, return only genes fully contained in the region.")),
		mcp.WithNumber("exact", mcp.Description("If 1, return only exact coordinate matches.")),
		mcp.WithNumber("either", mcp.Description("Match start (1) or end (2) of the region boundary.")),
		mcp.WithNumber("header", mcp.DefaultNumber(1), mcp.Description("Include header line (1) or not (0). Default is 1.")),
		mcp.WithString("fields", mcp.Description("Fields to return, comma-separated.")),
	)
}

func createQuerySamplesTool() mcp.Tool {
	return mcp.NewTool("snaptron_query_samples",
		mcp.WithDescription("Query sample metadata from a Snaptron compilation using the /samples endpoint. Returns sample records with metadata fields like tissue, organism, library_strategy, etc. Supports filtering by metadata fields and direct sample ID lookup."),
		mcp.WithString("compilation", mcp.Required(), mcp.Description(compilationHelp)),
		mcp.WithArray("sfilter", mcp.WithStringItems(), mcp.Description("Sample metadata filter expressions. Format: fieldname:value or fieldname>:value / fieldname<:value. Examples: ['description:cortex', 'library_strategy:RNA-Seq', 'SMRIN>:8']")),
		mcp.WithString("ids", mcp.Description("Comma-separated rail_ids (sample IDs) to retrieve directly (e.g. '20,40,100'). Cannot be used with sfilter.")),
		mcp.WithNumber("header", mcp.DefaultNumber(1), mcp.Description("Include header (1) or not (0). Default is 1.")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return.")),
	)
}

func createGetResultCountTool() mcp.Tool {
	return mcp.NewTool("snaptron_get_result_count",
		mcp.WithDescription("Get the count of junction records matching a query without returning the full records. Useful for gauging query size before fetching full results."),
		mcp.WithString("compilation", mcp.Required(), mcp.Description(compilationHelp)),
		mcp.WithString("regions", mcp.Description("Gene symbol or chromosomal coordinates.")),
		mcp.WithArray("rfilter", mcp.WithStringItems(), mcp.Description("Range filter expressions.")),
		mcp.WithArray("sfilter", mcp.WithStringItems(), mcp.Description("Sample metadata filter expressions.")),
		mcp.WithString("sids", mcp.Description("Sample IDs or group name.")),
	)
}

func createBuildURLTool() mcp.Tool {
	return mcp.NewTool("snaptron_build_url",
		mcp.WithDescription("Build a Snaptron API URL from query parameters without executing the request. Useful for understanding the URL structure or sharing queries. Returns the full URL that would be called."),
		mcp.WithString("compilation", mcp.Required(), mcp.Description("Snaptron compilation name.")),
		mcp.WithString("endpoint", mcp.Required(), mcp.Enum("snaptron", "genes", "samples"), mcp.Description("API endpoint to query ('snaptron' is the junctions endpoint).")),
		mcp.WithString("regions", mcp.Description("Gene symbol or chromosomal coordinates.")),
		mcp.WithString("ids", mcp.Description("Comma-separated snaptron_ids.")),
		mcp.WithArray("rfilter", mcp.WithStringItems(), mcp.Description("Range filter expressions.")),
		mcp.WithArray("sfilter", mcp.WithStringItems(), mcp.Description("Sample metadata filter expressions.")),
		mcp.WithString("sids", mcp.Description("Sample IDs or group name.")),
		mcp.WithNumber("contains", mcp.Description("Containment flag (0 or 1).")),
		mcp.WithNumber("exact", mcp.Description("Exact-match flag (0 or 1).")),
		mcp.WithNumber("either", mcp.Description("Boundary-match selector (1 or 2).")),
		mcp.WithNumber("header", mcp.DefaultNumber(1), mcp.Description("Include header line (1) or not (0). Default is 1.")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return.")),
	)
}
